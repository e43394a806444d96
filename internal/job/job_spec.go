package job

import "go-erp/internal/shared/search"

var (
	joinOrders    = search.LeftJoin("orders", "orders.id = jobs.order_id")
	joinCustomers = search.LeftJoin("customers", "customers.id = orders.customer_id")
	joinVehicles  = search.LeftJoin("vehicles", "vehicles.id = jobs.vehicle_id")
	joinEmployees = search.LeftJoin("employees", "employees.id = jobs.employee_id")
)

var tableQuery = search.Query{
	Model: &Job{},
	Select: "jobs.*, orders.order_number, customers.name AS customer_name, " +
		"vehicles.registration_plate, employees.name AS employee_name",
	Joins: []search.Join{joinOrders, joinCustomers, joinVehicles, joinEmployees},
}

var sortTable = search.SortTable{
	Default:  "id",
	Tiebreak: search.Col("jobs", "id"),
	Keys: map[string]search.SortKey{
		"id":                {Column: search.Col("jobs", "id")},
		"customerName":      {Column: search.Col("customers", "name"), Joins: []search.Join{joinOrders, joinCustomers}},
		"registrationPlate": {Column: search.Col("vehicles", "registration_plate"), Joins: []search.Join{joinVehicles}},
		"employeeName":      {Column: search.Col("employees", "name"), Joins: []search.Join{joinEmployees}},
		"pickUpDate":        {Column: search.Col("jobs", "pick_up_date")},
		"dropOffDate":       {Column: search.Col("jobs", "drop_off_date"), NullsLast: true},
	},
}

func buildSpec(c JobSearchCriteria) *search.Spec {
	return search.Where(
		search.Equal(search.Col("jobs", "id"), c.ID),
		search.Equal(search.Col("jobs", "order_id"), c.OrderID),
		search.Equal(search.Col("jobs", "vehicle_id"), c.VehicleID),
		search.Equal(search.Col("jobs", "employee_id"), c.EmployeeID),
		search.Contains(search.Col("customers", "name"), c.CustomerName).Via(joinOrders, joinCustomers),
		search.Contains(search.Col("vehicles", "registration_plate"), c.RegistrationPlate).Via(joinVehicles),
		search.Contains(search.Col("employees", "name"), c.EmployeeName).Via(joinEmployees),
		search.Between(search.Col("jobs", "pick_up_date"), c.PickUpDateFrom, c.PickUpDateTo),
		search.Between(search.Col("jobs", "drop_off_date"), c.DropOffDateFrom, c.DropOffDateTo),
	)
}

// activeSpec and doneSpec partition jobs by the complete flag.
func activeSpec(c JobSearchCriteria) *search.Spec {
	return buildSpec(c).And(search.Flag(search.Col("jobs", "complete"), false))
}

func doneSpec(c JobSearchCriteria) *search.Spec {
	return buildSpec(c).And(search.Flag(search.Col("jobs", "complete"), true))
}

func toTableInfo(r JobRow) JobTableInfo {
	return JobTableInfo{
		ID:                r.ID,
		OrderNumber:       deref(r.OrderNumber),
		CustomerName:      deref(r.CustomerName),
		RegistrationPlate: deref(r.RegistrationPlate),
		EmployeeName:      deref(r.EmployeeName),
		PickUpDate:        r.PickUpDate,
		DropOffDate:       r.DropOffDate,
		Complete:          r.Complete,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
