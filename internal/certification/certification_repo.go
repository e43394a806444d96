package certification

import (
	"context"
	"database/sql"

	"go-erp/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=certification_repo.go -destination=mock/certification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cert *Certification) error
	FindByEmployee(ctx context.Context, employeeID int64) ([]CertificationView, error)
	ExistsForPair(ctx context.Context, employeeID, certificationTypeID int64) (bool, error)
	EmployeeExists(ctx context.Context, employeeID int64) (bool, error)
	TypeExists(ctx context.Context, certificationTypeID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
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

func (r *repository) Create(ctx context.Context, cert *Certification) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID int64) ([]CertificationView, error) {
	var views []CertificationView
	err := r.db.WithContext(ctx).
		Model(&Certification{}).
		Select("certifications.*, certification_types.name AS certification_name").
		Joins("JOIN certification_types ON certification_types.id = certifications.certification_type_id").
		Where("certifications.employee_id = ?", employeeID).
		Order("certifications.issued_date").
		Find(&views).Error
	return views, err
}

func (r *repository) ExistsForPair(ctx context.Context, employeeID, certificationTypeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Certification{}).
		Where("employee_id = ? AND certification_type_id = ?", employeeID, certificationTypeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	return r.exists(ctx, "employees", employeeID)
}

func (r *repository) TypeExists(ctx context.Context, certificationTypeID int64) (bool, error) {
	return r.exists(ctx, "certification_types", certificationTypeID)
}

func (r *repository) exists(ctx context.Context, table string, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Certification{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
