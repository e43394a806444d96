package employee

import "go-erp/internal/shared/search"

var (
	joinPermissions        = search.LeftJoin("permissions", "permissions.id = employees.permission_id")
	joinCertifications     = search.LeftJoin("certifications", "certifications.employee_id = employees.id")
	joinCertificationTypes = search.LeftJoin("certification_types", "certification_types.id = certifications.certification_type_id")
	joinJobs               = search.LeftJoin("jobs", "jobs.employee_id = employees.id")
)

var tableQuery = search.Query{
	Model: &Employee{},
	Select: "employees.id, employees.name, employees.permission_id, " +
		"permissions.description AS permission, " +
		"certification_types.name AS certification_name, " +
		"jobs.drop_off_date AS last_job_date",
	Joins: []search.Join{joinPermissions, joinCertifications, joinCertificationTypes, joinJobs},
}

var sortTable = search.SortTable{
	Default:  "id",
	Tiebreak: search.Col("employees", "id"),
	Keys: map[string]search.SortKey{
		"id":                 {Column: search.Col("employees", "id")},
		"employeeName":       {Column: search.Col("employees", "name")},
		"permission":         {Column: search.Col("permissions", "description"), Joins: []search.Join{joinPermissions}, NullsLast: true},
		"certificationNames": {Column: search.Col("certification_types", "name"), Joins: []search.Join{joinCertifications, joinCertificationTypes}, NullsLast: true},
		"lastJobDate":        {Column: search.Col("jobs", "drop_off_date"), Joins: []search.Join{joinJobs}, NullsLast: true},
	},
}

func buildSpec(c EmployeeSearchCriteria) *search.Spec {
	return search.Where(
		search.Equal(search.Col("employees", "id"), c.EmployeeID),
		search.Contains(search.Col("employees", "name"), c.Name),
		search.Equal(search.Col("employees", "permission_id"), c.PermissionID),
		search.Contains(search.Col("certification_types", "name"), c.CertificationName).
			Via(joinCertifications, joinCertificationTypes),
		search.Between(search.Col("jobs", "drop_off_date"), c.LastJobDateFrom, c.LastJobDateTo).
			Via(joinJobs),
	)
}
