package permission

import (
	"errors"

	permissionerrors "go-erp/internal/permission/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return permissionerrors.ErrPermissionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return permissionerrors.ErrPermissionAlreadyExists
	}

	return err
}
