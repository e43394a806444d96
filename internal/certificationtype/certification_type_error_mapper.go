package certificationtype

import (
	"errors"

	certificationtypeerrors "go-erp/internal/certificationtype/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return certificationtypeerrors.ErrCertificationTypeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return certificationtypeerrors.ErrCertificationTypeAlreadyExists
	}

	return err
}
