package fuel

import (
	"context"

	"go-erp/internal/shared/search"

	"gorm.io/gorm"
)

//go:generate mockgen -source=fuel_repo.go -destination=mock/fuel_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *FuelConsumption) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[FuelRow], error)
	VehicleExists(ctx context.Context, vehicleID int64) (bool, error)
	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *FuelConsumption) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&FuelConsumption{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[FuelRow], error) {
	return search.Execute[FuelRow](ctx, r.db, tableQuery, spec, pageable)
}

func (r *repository) VehicleExists(ctx context.Context, vehicleID int64) (bool, error) {
	return r.exists(ctx, "vehicles", vehicleID)
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	return r.exists(ctx, "employees", employeeID)
}

func (r *repository) exists(ctx context.Context, table string, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
