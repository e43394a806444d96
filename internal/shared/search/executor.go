package search

import (
	"context"

	"gorm.io/gorm"
)

// Query names the root model and, for table views, the projected columns and the joins
// every row needs regardless of filters.
type Query struct {
	Model  any
	Select string
	Joins  []Join
}

// Execute counts the filtered set and fetches the requested page in the resolved order.
// The count runs without the projection so multi-column selects do not leak into COUNT.
func Execute[R any](ctx context.Context, db *gorm.DB, q Query, s *Spec, p Pageable) (Page[R], error) {
	scope := Where().Join(q.Joins...).merge(s).Join(p.Joins()...).Scope()

	page := Page[R]{Content: []R{}, Page: p.Page, Size: p.Size}
	if err := db.WithContext(ctx).Model(q.Model).Scopes(scope).Count(&page.TotalElements).Error; err != nil {
		return Page[R]{}, err
	}
	if page.TotalElements == 0 || int64(p.Offset()) >= page.TotalElements {
		return page, nil
	}

	tx := db.WithContext(ctx).Model(q.Model).Scopes(scope)
	if q.Select != "" {
		tx = tx.Select(q.Select)
	}
	if err := tx.Order(p.OrderBy()).Offset(p.Offset()).Limit(p.Size).Find(&page.Content).Error; err != nil {
		return Page[R]{}, err
	}
	return page, nil
}
