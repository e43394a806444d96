package certification

import (
	"errors"

	certificationerrors "go-erp/internal/certification/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return certificationerrors.ErrCertificationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return certificationerrors.ErrCertificationAlreadyExists
	}

	return err
}
