package vehicle

import "time"

type Vehicle struct {
	ID                int64   `gorm:"primaryKey"`
	RegistrationPlate string  `gorm:"size:20;not null;uniqueIndex:uq_vehicle_plate,expression:LOWER(registration_plate)"`
	Brand             string  `gorm:"size:50"`
	Model             string  `gorm:"size:50"`
	Capacity          float64 `gorm:"not null"`
	ProductionYear    int
	Available         bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
