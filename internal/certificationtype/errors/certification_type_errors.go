package certificationtypeerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrCertificationTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Certification type not found",
		http.StatusNotFound,
	)
	ErrCertificationTypeAlreadyExists = apperror.AlreadyExists("Certification type with the same name already exists")
	ErrEmptyName                      = apperror.WrongValue("Certification type name must not be empty")
	ErrInvalidCertificationTypeID     = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid certification type ID",
		http.StatusBadRequest,
	)
)
