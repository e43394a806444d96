package permission

import (
	"context"
	"database/sql"

	"go-erp/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=permission_repo.go -destination=mock/permission_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, perm *Permission) error
	FindAll(ctx context.Context) ([]Permission, error)
	ExistsByDescription(ctx context.Context, description string) (bool, error)
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

func (r *repository) Create(ctx context.Context, perm *Permission) error {
	return r.db.WithContext(ctx).Create(perm).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Permission, error) {
	var perms []Permission
	err := r.db.WithContext(ctx).Order("id").Find(&perms).Error
	return perms, err
}

func (r *repository) ExistsByDescription(ctx context.Context, description string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Permission{}).
		Where("LOWER(description) = LOWER(?)", description).
		Count(&count).Error
	return count > 0, err
}
