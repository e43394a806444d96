package order

import (
	"context"
	"database/sql"

	"go-erp/internal/shared/connection"
	"go-erp/internal/shared/search"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=order_repo.go -destination=mock/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*Order, error)
	CustomerExists(ctx context.Context, customerID int64) (bool, error)
	CountOpenJobs(ctx context.Context, orderID int64) (int64, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[OrderRow], error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Order, error) {
	var o Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("customers").Where("id = ?", customerID).Count(&count).Error
	return count > 0, err
}

func (r *repository) CountOpenJobs(ctx context.Context, orderID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("jobs").
		Where("order_id = ? AND complete = ?", orderID, false).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[OrderRow], error) {
	return search.Execute[OrderRow](ctx, r.db, tableQuery, spec, pageable)
}
