package order

import "time"

type Order struct {
	ID             int64     `gorm:"primaryKey"`
	OrderNumber    string    `gorm:"size:20;not null;uniqueIndex"`
	CustomerID     int64     `gorm:"not null;index"`
	Description    string    `gorm:"size:255"`
	Weight         float64   `gorm:"not null"`
	PickUpAddress  string    `gorm:"size:255;not null"`
	DropOffAddress string    `gorm:"size:255;not null"`
	OrderDate      time.Time `gorm:"type:date;not null"`
	Price          float64   `gorm:"type:numeric(12,2);not null"`
	Status         string    `gorm:"size:20;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderRow is an order with its customer name joined in.
type OrderRow struct {
	Order
	CustomerName *string
}
