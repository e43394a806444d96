package order

import "go-erp/internal/shared/search"

var joinCustomers = search.LeftJoin("customers", "customers.id = orders.customer_id")

var tableQuery = search.Query{
	Model:  &Order{},
	Select: "orders.*, customers.name AS customer_name",
	Joins:  []search.Join{joinCustomers},
}

var sortTable = search.SortTable{
	Default:  "id",
	Tiebreak: search.Col("orders", "id"),
	Keys: map[string]search.SortKey{
		"id":           {Column: search.Col("orders", "id")},
		"orderNumber":  {Column: search.Col("orders", "order_number")},
		"customerName": {Column: search.Col("customers", "name"), Joins: []search.Join{joinCustomers}},
		"orderDate":    {Column: search.Col("orders", "order_date")},
		"price":        {Column: search.Col("orders", "price")},
		"status":       {Column: search.Col("orders", "status")},
	},
}

func buildSpec(c OrderSearchCriteria) *search.Spec {
	return search.Where(
		search.Equal(search.Col("orders", "id"), c.ID),
		search.Equal(search.Col("orders", "customer_id"), c.CustomerID),
		search.Contains(search.Col("customers", "name"), c.CustomerName).Via(joinCustomers),
		search.Equal(search.Col("orders", "status"), c.Status),
		search.Contains(search.Col("orders", "description"), c.Description),
		search.Between(search.Col("orders", "order_date"), c.OrderDateFrom, c.OrderDateTo),
		search.Between(search.Col("orders", "price"), c.MinPrice, c.MaxPrice),
	)
}

func toTableInfo(r OrderRow) OrderTableInfo {
	info := OrderTableInfo{
		ID:             r.ID,
		OrderNumber:    r.OrderNumber,
		Description:    r.Description,
		PickUpAddress:  r.PickUpAddress,
		DropOffAddress: r.DropOffAddress,
		OrderDate:      r.OrderDate,
		Price:          r.Price,
		Status:         r.Status,
	}
	if r.CustomerName != nil {
		info.CustomerName = *r.CustomerName
	}
	return info
}
