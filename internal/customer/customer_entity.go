package customer

import "time"

type Customer struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:150;not null"`
	Email     string `gorm:"size:150"`
	Phone     string `gorm:"size:30"`
	Address   string `gorm:"size:255"`
	City      string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
