package fuelerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrFuelRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fuel record not found",
		http.StatusNotFound,
	)
	ErrVehicleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vehicle not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidLiters   = apperror.WrongValue("Liters must be greater than zero")
	ErrInvalidDistance = apperror.WrongValue("Distance must not be negative")
	ErrInvalidFuelID   = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid fuel record ID",
		http.StatusBadRequest,
	)
)
