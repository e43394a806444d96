// Package search turns optional filter values into composable gorm conditions and runs
// them as paginated, sorted queries.
//
// Every builder follows one rule: a nil (or, for text, empty) filter value produces a nil
// *Condition, and a nil condition is the identity of the AND composition in Spec.
package search

import (
	"strings"

	"gorm.io/gorm/clause"
)

// Join is a relationship join needed by a condition or sort key. Joins are keyed by Name,
// so filters that traverse the same relationship share a single join.
type Join struct {
	Name string
	SQL  string
}

// LeftJoin builds `LEFT JOIN table ON on`, keyed by the table name.
func LeftJoin(table, on string) Join {
	return Join{Name: table, SQL: "LEFT JOIN " + table + " ON " + on}
}

func Col(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

// Condition is one typed filter together with the joins it traverses.
type Condition struct {
	Expr  clause.Expression
	Joins []Join
}

// Via attaches the joins needed to reach the condition's column. Safe on nil.
func (c *Condition) Via(joins ...Join) *Condition {
	if c == nil {
		return nil
	}
	c.Joins = append(c.Joins, joins...)
	return c
}

// Equal matches col = *v.
func Equal[T any](col clause.Column, v *T) *Condition {
	if v == nil {
		return nil
	}
	return &Condition{Expr: clause.Eq{Column: col, Value: *v}}
}

// Contains is a case-insensitive substring match on both ends.
func Contains(col clause.Column, v *string) *Condition {
	if v == nil || *v == "" {
		return nil
	}
	pattern := "%" + escapeLike(strings.ToLower(*v)) + "%"
	return &Condition{Expr: clause.Expr{SQL: "LOWER(?) LIKE ?", Vars: []any{col, pattern}}}
}

// Between is inclusive on both bounds; a missing bound leaves that side open.
func Between[T any](col clause.Column, from, to *T) *Condition {
	switch {
	case from == nil && to == nil:
		return nil
	case to == nil:
		return &Condition{Expr: clause.Gte{Column: col, Value: *from}}
	case from == nil:
		return &Condition{Expr: clause.Lte{Column: col, Value: *to}}
	default:
		return &Condition{Expr: clause.And(
			clause.Gte{Column: col, Value: *from},
			clause.Lte{Column: col, Value: *to},
		)}
	}
}

// Flag is a parameterless, always-active condition used to partition table views.
func Flag(col clause.Column, value bool) *Condition {
	return &Condition{Expr: clause.Eq{Column: col, Value: value}}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
