package certificationerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrCertificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Certification not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrCertificationTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Certification type not found",
		http.StatusNotFound,
	)
	ErrCertificationAlreadyExists = apperror.AlreadyExists("Employee already holds a certification of this type")
	ErrExpiryBeforeIssue          = apperror.WrongValue("Expiry date must not be before the issued date")
	ErrInvalidCertificationID     = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid certification ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
