package vehicle

import "go-erp/internal/shared/search"

var tableQuery = search.Query{Model: &Vehicle{}}

var sortTable = search.SortTable{
	Default:  "id",
	Tiebreak: search.Col("vehicles", "id"),
	Keys: map[string]search.SortKey{
		"id":                {Column: search.Col("vehicles", "id")},
		"registrationPlate": {Column: search.Col("vehicles", "registration_plate")},
		"brand":             {Column: search.Col("vehicles", "brand")},
		"capacity":          {Column: search.Col("vehicles", "capacity")},
		"productionYear":    {Column: search.Col("vehicles", "production_year")},
	},
}

func buildSpec(c VehicleSearchCriteria) *search.Spec {
	return search.Where(
		search.Equal(search.Col("vehicles", "id"), c.ID),
		search.Contains(search.Col("vehicles", "registration_plate"), c.RegistrationPlate),
		search.Contains(search.Col("vehicles", "brand"), c.Brand),
		search.Contains(search.Col("vehicles", "model"), c.Model),
		search.Equal(search.Col("vehicles", "available"), c.Available),
		search.Between(search.Col("vehicles", "capacity"), c.MinCapacity, c.MaxCapacity),
		search.Between(search.Col("vehicles", "production_year"), c.YearFrom, c.YearTo),
	)
}

func toTableInfo(v Vehicle) VehicleTableInfo {
	return VehicleTableInfo{
		ID:                v.ID,
		RegistrationPlate: v.RegistrationPlate,
		Brand:             v.Brand,
		Model:             v.Model,
		Capacity:          v.Capacity,
		ProductionYear:    v.ProductionYear,
		Available:         v.Available,
	}
}
