package job

import "time"

type Job struct {
	ID          int64     `gorm:"primaryKey"`
	OrderID     int64     `gorm:"not null;index"`
	VehicleID   int64     `gorm:"not null;index"`
	EmployeeID  int64     `gorm:"not null;index"`
	PickUpDate  time.Time `gorm:"not null"`
	DropOffDate *time.Time
	Complete    bool   `gorm:"not null;default:false;index"`
	Comment     string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobRow is a job with the names used by the table view joined in.
type JobRow struct {
	Job
	OrderNumber       *string
	CustomerName      *string
	RegistrationPlate *string
	EmployeeName      *string
}

// DeliveryNote carries everything printed on a job's delivery note.
type DeliveryNote struct {
	JobID             int64
	OrderNumber       string
	OrderDescription  string
	Weight            float64
	PickUpAddress     string
	DropOffAddress    string
	CustomerName      string
	CustomerPhone     string
	RegistrationPlate string
	VehicleBrand      string
	VehicleModel      string
	DriverName        string
	PickUpDate        time.Time
	DropOffDate       *time.Time
	Comment           string
}
