package vehicleerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrVehicleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vehicle not found",
		http.StatusNotFound,
	)
	ErrVehicleAlreadyExists = apperror.AlreadyExists("Vehicle with the same registration plate already exists")
	ErrEmptyPlate           = apperror.WrongValue("Registration plate must not be empty")
	ErrInvalidCapacity      = apperror.WrongValue("Capacity must be greater than zero")
	ErrInvalidVehicleID     = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid vehicle ID",
		http.StatusBadRequest,
	)
)
