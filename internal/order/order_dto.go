package order

import (
	"time"

	"go-erp/internal/shared/search"
)

type CreateOrderRequest struct {
	CustomerID     int64     `json:"customerId" binding:"required"`
	Description    string    `json:"description"`
	Weight         float64   `json:"weight"`
	PickUpAddress  string    `json:"pickUpAddress" binding:"required"`
	DropOffAddress string    `json:"dropOffAddress" binding:"required"`
	OrderDate      time.Time `json:"orderDate" binding:"required"`
	Price          float64   `json:"price"`
}

type UpdateOrderRequest struct {
	Description    *string    `json:"description"`
	Weight         *float64   `json:"weight"`
	PickUpAddress  *string    `json:"pickUpAddress"`
	DropOffAddress *string    `json:"dropOffAddress"`
	OrderDate      *time.Time `json:"orderDate"`
	Price          *float64   `json:"price"`
	Status         *string    `json:"status"`
}

type OrderResponse struct {
	ID             int64     `json:"id"`
	OrderNumber    string    `json:"orderNumber"`
	CustomerID     int64     `json:"customerId"`
	Description    string    `json:"description"`
	Weight         float64   `json:"weight"`
	PickUpAddress  string    `json:"pickUpAddress"`
	DropOffAddress string    `json:"dropOffAddress"`
	OrderDate      time.Time `json:"orderDate"`
	Price          float64   `json:"price"`
	Status         string    `json:"status"`
}

type OrderSearchCriteria struct {
	ID            *int64     `json:"id"`
	CustomerID    *int64     `json:"customerId"`
	CustomerName  *string    `json:"customerName"`
	Status        *string    `json:"status"`
	Description   *string    `json:"description"`
	OrderDateFrom *time.Time `json:"orderDateFrom"`
	OrderDateTo   *time.Time `json:"orderDateTo"`
	MinPrice      *float64   `json:"minPrice"`
	MaxPrice      *float64   `json:"maxPrice"`
	search.PageCriteria
}

type OrderTableInfo struct {
	ID             int64     `json:"id"`
	OrderNumber    string    `json:"orderNumber"`
	CustomerName   string    `json:"customerName"`
	Description    string    `json:"description"`
	PickUpAddress  string    `json:"pickUpAddress"`
	DropOffAddress string    `json:"dropOffAddress"`
	OrderDate      time.Time `json:"orderDate"`
	Price          float64   `json:"price"`
	Status         string    `json:"status"`
}
