package fuel

import "go-erp/internal/shared/search"

var (
	joinVehicles  = search.LeftJoin("vehicles", "vehicles.id = fuel_consumptions.vehicle_id")
	joinEmployees = search.LeftJoin("employees", "employees.id = fuel_consumptions.employee_id")
)

var tableQuery = search.Query{
	Model:  &FuelConsumption{},
	Select: "fuel_consumptions.*, vehicles.registration_plate, employees.name AS employee_name",
	Joins:  []search.Join{joinVehicles, joinEmployees},
}

var sortTable = search.SortTable{
	Default:  "id",
	Tiebreak: search.Col("fuel_consumptions", "id"),
	Keys: map[string]search.SortKey{
		"id":                {Column: search.Col("fuel_consumptions", "id")},
		"refuelDate":        {Column: search.Col("fuel_consumptions", "refuel_date")},
		"liters":            {Column: search.Col("fuel_consumptions", "liters")},
		"registrationPlate": {Column: search.Col("vehicles", "registration_plate"), Joins: []search.Join{joinVehicles}},
	},
}

func buildSpec(c FuelSearchCriteria) *search.Spec {
	return search.Where(
		search.Equal(search.Col("fuel_consumptions", "vehicle_id"), c.VehicleID),
		search.Equal(search.Col("fuel_consumptions", "employee_id"), c.EmployeeID),
		search.Contains(search.Col("vehicles", "registration_plate"), c.RegistrationPlate).Via(joinVehicles),
		search.Between(search.Col("fuel_consumptions", "refuel_date"), c.RefuelDateFrom, c.RefuelDateTo),
		search.Between(search.Col("fuel_consumptions", "liters"), c.MinLiters, c.MaxLiters),
	)
}

func toTableInfo(r FuelRow) FuelTableInfo {
	info := FuelTableInfo{
		ID:             r.ID,
		RefuelDate:     r.RefuelDate,
		Liters:         r.Liters,
		DistanceKm:     r.DistanceKm,
		Cost:           r.Cost,
		LitersPer100Km: r.LitersPer100Km(),
	}
	if r.RegistrationPlate != nil {
		info.RegistrationPlate = *r.RegistrationPlate
	}
	if r.EmployeeName != nil {
		info.EmployeeName = *r.EmployeeName
	}
	return info
}
