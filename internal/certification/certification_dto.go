package certification

import "time"

type CreateCertificationRequest struct {
	EmployeeID          int64     `json:"employeeId" binding:"required"`
	CertificationTypeID int64     `json:"certificationTypeId" binding:"required"`
	IssuedDate          time.Time `json:"issuedDate" binding:"required"`
	ExpiryDate          time.Time `json:"expiryDate" binding:"required"`
}

type CertificationResponse struct {
	ID                  int64     `json:"id"`
	EmployeeID          int64     `json:"employeeId"`
	CertificationTypeID int64     `json:"certificationTypeId"`
	CertificationName   string    `json:"certificationName,omitempty"`
	IssuedDate          time.Time `json:"issuedDate"`
	ExpiryDate          time.Time `json:"expiryDate"`
}
