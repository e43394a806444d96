package fuel

import (
	"errors"

	fuelerrors "go-erp/internal/fuel/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fuelerrors.ErrFuelRecordNotFound
	}
	return err
}
