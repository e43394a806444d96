package customer

import "go-erp/internal/shared/search"

var tableQuery = search.Query{Model: &Customer{}}

var sortTable = search.SortTable{
	Default:  "id",
	Tiebreak: search.Col("customers", "id"),
	Keys: map[string]search.SortKey{
		"id":           {Column: search.Col("customers", "id")},
		"customerName": {Column: search.Col("customers", "name")},
		"email":        {Column: search.Col("customers", "email")},
		"city":         {Column: search.Col("customers", "city")},
	},
}

func buildSpec(c CustomerSearchCriteria) *search.Spec {
	return search.Where(
		search.Equal(search.Col("customers", "id"), c.ID),
		search.Contains(search.Col("customers", "name"), c.Name),
		search.Contains(search.Col("customers", "email"), c.Email),
		search.Contains(search.Col("customers", "phone"), c.Phone),
		search.Contains(search.Col("customers", "city"), c.City),
	)
}

func toTableInfo(c Customer) CustomerTableInfo {
	return CustomerTableInfo{
		ID:           c.ID,
		CustomerName: c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		City:         c.City,
	}
}
