package search

import (
	"fmt"
	"strings"

	"go-erp/internal/shared/apperror"

	"gorm.io/gorm/clause"
)

const (
	DefaultPage = 0
	DefaultSize = 20
	MaxSize     = 200
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection is ASC unless the value is "desc" in any case.
func ParseDirection(v *string) Direction {
	if v != nil && strings.EqualFold(strings.TrimSpace(*v), string(Desc)) {
		return Desc
	}
	return Asc
}

// PageCriteria is the pagination part shared by every search criteria body.
type PageCriteria struct {
	Page          *int    `json:"page"`
	Size          *int    `json:"size"`
	SortBy        *string `json:"sortBy"`
	SortDirection *string `json:"sortDirection"`
}

// SortKey is the column an external sort name resolves to and the joins needed to reach it.
// NullsLast keeps rows without a value at the end in both directions; use it for
// nullable columns and columns reached through a LEFT JOIN.
type SortKey struct {
	Column    clause.Column
	Joins     []Join
	NullsLast bool
}

// SortTable is the allow-list of sort names for one entity.
type SortTable struct {
	Default  string
	Tiebreak clause.Column
	Keys     map[string]SortKey
}

type Pageable struct {
	Page      int
	Size      int
	SortBy    string
	Direction Direction

	key      SortKey
	tiebreak clause.Column
}

// Resolve applies the defaults and validates the sort name against the table.
func (t SortTable) Resolve(c PageCriteria) (Pageable, error) {
	p := Pageable{
		Page:      DefaultPage,
		Size:      DefaultSize,
		SortBy:    t.Default,
		Direction: ParseDirection(c.SortDirection),
		tiebreak:  t.Tiebreak,
	}

	if c.Page != nil {
		if *c.Page < 0 {
			return Pageable{}, apperror.WrongValue("page must not be negative")
		}
		p.Page = *c.Page
	}
	if c.Size != nil {
		if *c.Size < 1 {
			return Pageable{}, apperror.WrongValue("size must be at least 1")
		}
		p.Size = min(*c.Size, MaxSize)
	}
	if c.SortBy != nil && strings.TrimSpace(*c.SortBy) != "" {
		p.SortBy = strings.TrimSpace(*c.SortBy)
	}

	key, ok := t.Keys[p.SortBy]
	if !ok {
		return Pageable{}, apperror.WrongValue(fmt.Sprintf("unknown sort key %q", p.SortBy))
	}
	p.key = key
	return p, nil
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

func (p Pageable) Joins() []Join {
	return p.key.Joins
}

// OrderBy sorts by the resolved key, then by the primary key so pages are stable.
func (p Pageable) OrderBy() clause.OrderBy {
	desc := p.Direction == Desc
	cols := []clause.OrderByColumn{{Column: p.key.Column, Desc: desc}}
	if p.tiebreak.Name != "" && p.tiebreak != p.key.Column {
		cols = append(cols, clause.OrderByColumn{Column: p.tiebreak, Desc: desc})
	}
	if !p.key.NullsLast {
		return clause.OrderBy{Columns: cols}
	}

	// OrderByColumn has no NULLS modifier, so the clause is rendered as an expression.
	parts := make([]string, len(cols))
	vars := make([]any, len(cols))
	for i, c := range cols {
		parts[i] = "?"
		if c.Desc {
			parts[i] += " DESC"
		}
		if i == 0 {
			parts[i] += " NULLS LAST"
		}
		vars[i] = c.Column
	}
	return clause.OrderBy{Expression: clause.Expr{SQL: strings.Join(parts, ","), Vars: vars}}
}
