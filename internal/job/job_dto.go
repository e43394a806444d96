package job

import (
	"time"

	"go-erp/internal/shared/search"
)

type CreateJobRequest struct {
	OrderID     int64      `json:"orderId" binding:"required"`
	VehicleID   int64      `json:"vehicleId" binding:"required"`
	EmployeeID  int64      `json:"employeeId" binding:"required"`
	PickUpDate  time.Time  `json:"pickUpDate" binding:"required"`
	DropOffDate *time.Time `json:"dropOffDate"`
	Comment     string     `json:"comment"`
}

type UpdateJobRequest struct {
	VehicleID   *int64     `json:"vehicleId"`
	EmployeeID  *int64     `json:"employeeId"`
	PickUpDate  *time.Time `json:"pickUpDate"`
	DropOffDate *time.Time `json:"dropOffDate"`
	Comment     *string    `json:"comment"`
}

type CompleteJobRequest struct {
	DropOffDate *time.Time `json:"dropOffDate"`
}

type JobResponse struct {
	ID          int64      `json:"id"`
	OrderID     int64      `json:"orderId"`
	VehicleID   int64      `json:"vehicleId"`
	EmployeeID  int64      `json:"employeeId"`
	PickUpDate  time.Time  `json:"pickUpDate"`
	DropOffDate *time.Time `json:"dropOffDate"`
	Complete    bool       `json:"complete"`
	Comment     string     `json:"comment"`
}

type JobSearchCriteria struct {
	ID                *int64     `json:"id"`
	OrderID           *int64     `json:"orderId"`
	VehicleID         *int64     `json:"vehicleId"`
	EmployeeID        *int64     `json:"employeeId"`
	CustomerName      *string    `json:"customerName"`
	RegistrationPlate *string    `json:"registrationPlate"`
	EmployeeName      *string    `json:"employeeName"`
	PickUpDateFrom    *time.Time `json:"pickUpDateFrom"`
	PickUpDateTo      *time.Time `json:"pickUpDateTo"`
	DropOffDateFrom   *time.Time `json:"dropOffDateFrom"`
	DropOffDateTo     *time.Time `json:"dropOffDateTo"`
	search.PageCriteria
}

type JobTableInfo struct {
	ID                int64      `json:"id"`
	OrderNumber       string     `json:"orderNumber"`
	CustomerName      string     `json:"customerName"`
	RegistrationPlate string     `json:"registrationPlate"`
	EmployeeName      string     `json:"employeeName"`
	PickUpDate        time.Time  `json:"pickUpDate"`
	DropOffDate       *time.Time `json:"dropOffDate"`
	Complete          bool       `json:"complete"`
}
