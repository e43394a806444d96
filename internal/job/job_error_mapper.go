package job

import (
	"errors"

	joberrors "go-erp/internal/job/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}

	// foreign_key_violation: the order, vehicle or employee went away after the existence checks
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return joberrors.ErrJobReferenceMissing
	}

	return err
}
