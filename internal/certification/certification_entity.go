package certification

import "time"

type Certification struct {
	ID                  int64     `gorm:"primaryKey"`
	EmployeeID          int64     `gorm:"not null;uniqueIndex:uq_certification_employee_type"`
	CertificationTypeID int64     `gorm:"not null;uniqueIndex:uq_certification_employee_type"`
	IssuedDate          time.Time `gorm:"type:date;not null"`
	ExpiryDate          time.Time `gorm:"type:date;not null"`
}

// CertificationView is a certification with its type name joined in.
type CertificationView struct {
	Certification
	CertificationName string
}
