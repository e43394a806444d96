package certificationtype

import "go-erp/internal/shared/search"

var tableQuery = search.Query{Model: &CertificationType{}}

var sortTable = search.SortTable{
	Default:  "id",
	Tiebreak: search.Col("certification_types", "id"),
	Keys: map[string]search.SortKey{
		"id":                {Column: search.Col("certification_types", "id")},
		"certificationName": {Column: search.Col("certification_types", "name")},
	},
}

func buildSpec(c CertificationTypeSearchCriteria) *search.Spec {
	return search.Where(
		search.Equal(search.Col("certification_types", "id"), c.ID),
		search.Contains(search.Col("certification_types", "name"), c.CertificationName),
	)
}

func toTableInfo(ct CertificationType) CertificationTypeTableInfo {
	return CertificationTypeTableInfo{ID: ct.ID, CertificationName: ct.Name}
}
