package employee

import (
	"strings"
	"time"
)

// aggregateRows collapses the join fanout of one fetched page into one row per employee,
// in first-seen order. Certification names are de-duplicated and comma-joined; the last
// job date is the latest non-null drop-off date. Rows on other pages are never merged.
//
// Rows are keyed by employee id, so two employees sharing a name and permission stay apart.
func aggregateRows(rows []EmployeeRow) []EmployeeTableInfo {
	type acc struct {
		info  EmployeeTableInfo
		names []string
		seen  map[string]struct{}
	}

	order := make([]int64, 0, len(rows))
	byID := make(map[int64]*acc, len(rows))

	for _, row := range rows {
		a, ok := byID[row.ID]
		if !ok {
			a = &acc{
				info: EmployeeTableInfo{
					ID:           row.ID,
					EmployeeName: row.Name,
					Permission:   deref(row.Permission),
				},
				seen: make(map[string]struct{}),
			}
			byID[row.ID] = a
			order = append(order, row.ID)
		}

		if row.CertificationName != nil && *row.CertificationName != "" {
			if _, dup := a.seen[*row.CertificationName]; !dup {
				a.seen[*row.CertificationName] = struct{}{}
				a.names = append(a.names, *row.CertificationName)
			}
		}
		a.info.LastJobDate = latest(a.info.LastJobDate, row.LastJobDate)
	}

	out := make([]EmployeeTableInfo, 0, len(order))
	for _, id := range order {
		a := byID[id]
		a.info.CertificationNames = strings.Join(a.names, ", ")
		out = append(out, a.info)
	}
	return out
}

func latest(current, candidate *time.Time) *time.Time {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.After(*current) {
		t := *candidate
		return &t
	}
	return current
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
