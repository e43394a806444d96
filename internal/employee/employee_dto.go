package employee

import (
	"time"

	"go-erp/internal/shared/search"
)

type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Password     string `json:"password"`
	PermissionID int64  `json:"permissionId"`
}

// UpdateEmployeeRequest is partial: nil fields keep their stored value.
type UpdateEmployeeRequest struct {
	Name         *string `json:"name"`
	Password     *string `json:"password"`
	PermissionID *int64  `json:"permissionId"`
}

type EmployeeResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PermissionID int64     `json:"permissionId"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type EmployeeSearchCriteria struct {
	EmployeeID        *int64     `json:"employeeId"`
	Name              *string    `json:"name"`
	PermissionID      *int64     `json:"permissionId"`
	CertificationName *string    `json:"certificationName"`
	LastJobDateFrom   *time.Time `json:"lastJobDateFrom"`
	LastJobDateTo     *time.Time `json:"lastJobDateTo"`
	search.PageCriteria
}

type EmployeeTableInfo struct {
	ID                 int64      `json:"id"`
	EmployeeName       string     `json:"employeeName"`
	Permission         string     `json:"permission"`
	CertificationNames string     `json:"certificationNames"`
	LastJobDate        *time.Time `json:"lastJobDate"`
}
