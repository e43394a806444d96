package customer

import (
	"errors"

	customererrors "go-erp/internal/customer/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return customererrors.ErrCustomerNotFound
	}
	return err
}
