package job

import (
	"context"
	"database/sql"

	"go-erp/internal/domain"
	"go-erp/internal/shared/connection"
	"go-erp/internal/shared/search"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id int64) (*Job, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[JobRow], error)
	OrderStatus(ctx context.Context, orderID int64) (string, error)
	StartOrder(ctx context.Context, orderID int64) error
	VehicleExists(ctx context.Context, vehicleID int64) (bool, error)
	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
	FindDeliveryNote(ctx context.Context, id int64) (*DeliveryNote, error)
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

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Job, error) {
	var j Job
	if err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

// FindByIDForUpdate locks the job row until the surrounding transaction ends.
func (r *repository) FindByIDForUpdate(ctx context.Context, id int64) (*Job, error) {
	var j Job
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[JobRow], error) {
	return search.Execute[JobRow](ctx, r.db, tableQuery, spec, pageable)
}

// OrderStatus returns gorm.ErrRecordNotFound when the order does not exist.
func (r *repository) OrderStatus(ctx context.Context, orderID int64) (string, error) {
	var status string
	res := r.db.WithContext(ctx).Table("orders").Select("status").Where("id = ?", orderID).Limit(1).Scan(&status)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return status, nil
}

// StartOrder moves a NEW order to IN_PROGRESS; other statuses are left alone.
func (r *repository) StartOrder(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Table("orders").
		Where("id = ? AND status = ?", orderID, domain.OrderStatusNew).
		Updates(map[string]any{"status": domain.OrderStatusInProgress, "updated_at": gorm.Expr("NOW()")}).
		Error
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

func (r *repository) FindDeliveryNote(ctx context.Context, id int64) (*DeliveryNote, error) {
	var note DeliveryNote
	res := r.db.WithContext(ctx).
		Table("jobs").
		Select(`jobs.id AS job_id,
			orders.order_number, orders.description AS order_description, orders.weight,
			orders.pick_up_address, orders.drop_off_address,
			customers.name AS customer_name, customers.phone AS customer_phone,
			vehicles.registration_plate, vehicles.brand AS vehicle_brand, vehicles.model AS vehicle_model,
			employees.name AS driver_name,
			jobs.pick_up_date, jobs.drop_off_date, jobs.comment`).
		Joins("JOIN orders ON orders.id = jobs.order_id").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Joins("JOIN vehicles ON vehicles.id = jobs.vehicle_id").
		Joins("JOIN employees ON employees.id = jobs.employee_id").
		Where("jobs.id = ?", id).
		Limit(1).
		Scan(&note)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &note, nil
}
