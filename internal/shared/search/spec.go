package search

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Spec accumulates a conjunction of conditions and the de-duplicated joins they need.
// The zero value (and nil) matches every row.
type Spec struct {
	joins []Join
	exprs []clause.Expression
}

// Where starts a spec from the given conditions; nil conditions are skipped.
func Where(conds ...*Condition) *Spec {
	s := &Spec{}
	for _, c := range conds {
		s.And(c)
	}
	return s
}

func (s *Spec) And(c *Condition) *Spec {
	if c == nil || c.Expr == nil {
		return s
	}
	s.Join(c.Joins...)
	s.exprs = append(s.exprs, c.Expr)
	return s
}

// Join registers joins without adding a condition (table views and sort keys use this).
func (s *Spec) Join(joins ...Join) *Spec {
	for _, j := range joins {
		if !s.hasJoin(j.Name) {
			s.joins = append(s.joins, j)
		}
	}
	return s
}

func (s *Spec) hasJoin(name string) bool {
	for _, j := range s.joins {
		if j.Name == name {
			return true
		}
	}
	return false
}

func (s *Spec) Joins() []Join {
	if s == nil {
		return nil
	}
	return s.joins
}

func (s *Spec) Conditions() []clause.Expression {
	if s == nil {
		return nil
	}
	return s.exprs
}

func (s *Spec) IsEmpty() bool {
	return s == nil || len(s.exprs) == 0
}

// merge appends other's joins and conditions to s. other is left untouched.
func (s *Spec) merge(other *Spec) *Spec {
	if other == nil {
		return s
	}
	s.Join(other.Joins()...)
	s.exprs = append(s.exprs, other.Conditions()...)
	return s
}

// Scope applies joins and the AND of all conditions as a gorm scope.
func (s *Spec) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s == nil {
			return db
		}
		for _, j := range s.joins {
			db = db.Joins(j.SQL)
		}
		if !s.IsEmpty() {
			db = db.Clauses(clause.Where{Exprs: s.Conditions()})
		}
		return db
	}
}
