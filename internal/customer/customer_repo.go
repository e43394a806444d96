package customer

import (
	"context"

	"go-erp/internal/shared/search"

	"gorm.io/gorm"
)

//go:generate mockgen -source=customer_repo.go -destination=mock/customer_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, cust *Customer) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	Update(ctx context.Context, cust *Customer) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[Customer], error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cust *Customer) error {
	return r.db.WithContext(ctx).Create(cust).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	var cust Customer
	if err := r.db.WithContext(ctx).First(&cust, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *repository) Update(ctx context.Context, cust *Customer) error {
	return r.db.WithContext(ctx).Save(cust).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[Customer], error) {
	return search.Execute[Customer](ctx, r.db, tableQuery, spec, pageable)
}
