package domain

// Order statuses. Jobs move an order from NEW to IN_PROGRESS; the job-completed
// consumer moves it to DELIVERED once no open job remains.
const (
	OrderStatusNew        = "NEW"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusDelivered  = "DELIVERED"
)

func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDelivered:
		return true
	}
	return false
}
