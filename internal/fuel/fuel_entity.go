package fuel

import (
	"math"
	"time"
)

type FuelConsumption struct {
	ID         int64     `gorm:"primaryKey"`
	VehicleID  int64     `gorm:"not null;index"`
	EmployeeID int64     `gorm:"not null;index"`
	RefuelDate time.Time `gorm:"not null"`
	Liters     float64   `gorm:"not null"`
	DistanceKm float64
	Cost       float64
	CreatedAt  time.Time
}

func (FuelConsumption) TableName() string {
	return "fuel_consumptions"
}

type FuelRow struct {
	FuelConsumption
	RegistrationPlate *string
	EmployeeName      *string
}

// LitersPer100Km is zero when no distance was recorded.
func (f FuelConsumption) LitersPer100Km() float64 {
	if f.DistanceKm <= 0 {
		return 0
	}
	return math.Round(f.Liters/f.DistanceKm*100*100) / 100
}
