package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetByName(ctx context.Context, name string) (*Credential, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByName matches case-insensitively, mirroring the unique index on LOWER(name).
func (r *repository) GetByName(ctx context.Context, name string) (*Credential, error) {
	var cred Credential
	err := r.db.WithContext(ctx).
		Select("id", "name", "password", "permission_id").
		Where("LOWER(name) = LOWER(?)", name).
		First(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}
