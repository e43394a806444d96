package employee

import "time"

type Employee struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null;uniqueIndex:uq_employee_name,expression:LOWER(name)"`
	Password     string `gorm:"size:255;not null"`
	PermissionID int64  `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeRow is one row of the table view. The certification and job joins fan out, so
// the same employee can appear on several rows.
type EmployeeRow struct {
	ID                int64
	Name              string
	PermissionID      int64
	Permission        *string
	CertificationName *string
	LastJobDate       *time.Time
}
