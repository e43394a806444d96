package certificationtype

import (
	"context"
	"database/sql"

	"go-erp/internal/shared/connection"
	"go-erp/internal/shared/search"

	"gorm.io/gorm"
)

//go:generate mockgen -source=certification_type_repo.go -destination=mock/certification_type_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ct *CertificationType) error
	FindAll(ctx context.Context) ([]CertificationType, error)
	FindByID(ctx context.Context, id int64) (*CertificationType, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, ct *CertificationType) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[CertificationType], error)
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

func (r *repository) Create(ctx context.Context, ct *CertificationType) error {
	return r.db.WithContext(ctx).Create(ct).Error
}

func (r *repository) FindAll(ctx context.Context) ([]CertificationType, error) {
	var cts []CertificationType
	err := r.db.WithContext(ctx).Order("name").Find(&cts).Error
	return cts, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*CertificationType, error) {
	var ct CertificationType
	if err := r.db.WithContext(ctx).First(&ct, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *repository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CertificationType{}).
		Where("LOWER(name) = LOWER(?)", name).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, ct *CertificationType) error {
	return r.db.WithContext(ctx).Save(ct).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&CertificationType{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Search(ctx context.Context, spec *search.Spec, pageable search.Pageable) (search.Page[CertificationType], error) {
	return search.Execute[CertificationType](ctx, r.db, tableQuery, spec, pageable)
}
