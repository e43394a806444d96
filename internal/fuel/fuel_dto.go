package fuel

import (
	"time"

	"go-erp/internal/shared/search"
)

type CreateFuelRequest struct {
	VehicleID  int64     `json:"vehicleId" binding:"required"`
	EmployeeID int64     `json:"employeeId" binding:"required"`
	RefuelDate time.Time `json:"refuelDate" binding:"required"`
	Liters     float64   `json:"liters"`
	DistanceKm float64   `json:"distanceKm"`
	Cost       float64   `json:"cost"`
}

type FuelResponse struct {
	ID         int64     `json:"id"`
	VehicleID  int64     `json:"vehicleId"`
	EmployeeID int64     `json:"employeeId"`
	RefuelDate time.Time `json:"refuelDate"`
	Liters     float64   `json:"liters"`
	DistanceKm float64   `json:"distanceKm"`
	Cost       float64   `json:"cost"`
}

type FuelSearchCriteria struct {
	VehicleID         *int64     `json:"vehicleId"`
	EmployeeID        *int64     `json:"employeeId"`
	RegistrationPlate *string    `json:"registrationPlate"`
	RefuelDateFrom    *time.Time `json:"refuelDateFrom"`
	RefuelDateTo      *time.Time `json:"refuelDateTo"`
	MinLiters         *float64   `json:"minLiters"`
	MaxLiters         *float64   `json:"maxLiters"`
	search.PageCriteria
}

type FuelTableInfo struct {
	ID                int64     `json:"id"`
	RegistrationPlate string    `json:"registrationPlate"`
	EmployeeName      string    `json:"employeeName"`
	RefuelDate        time.Time `json:"refuelDate"`
	Liters            float64   `json:"liters"`
	DistanceKm        float64   `json:"distanceKm"`
	Cost              float64   `json:"cost"`
	LitersPer100Km    float64   `json:"litersPer100Km"`
}
