package joberrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
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
	ErrJobReferenceMissing = apperror.WrongValue("Job refers to a record that no longer exists")
	ErrJobAlreadyComplete  = apperror.WrongValue("Job is already complete")
	ErrOrderDelivered      = apperror.WrongValue("Order is already delivered")
	ErrDropOffBeforePickUp = apperror.WrongValue("Drop-off date must not be before the pick-up date")
	ErrInvalidJobID        = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job ID",
		http.StatusBadRequest,
	)
)
