package events

import "time"

const (
	JobCompletedTopic     = "logistics.job.completed"
	JobCompletedEventType = "job_completed"
)

type JobCompletedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	JobID       int64     `json:"job_id"`
	OrderID     int64     `json:"order_id"`
	EmployeeID  int64     `json:"employee_id"`
	VehicleID   int64     `json:"vehicle_id"`
	DropOffDate time.Time `json:"drop_off_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
