package ordererrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)
	ErrOrderAlreadyExists = apperror.AlreadyExists("Order number already in use")
	ErrInvalidWeight      = apperror.WrongValue("Weight must be greater than zero")
	ErrInvalidPrice       = apperror.WrongValue("Price must not be negative")
	ErrInvalidStatus      = apperror.WrongValue("Status must be NEW, IN_PROGRESS or DELIVERED")
	ErrInvalidOrderID     = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order ID",
		http.StatusBadRequest,
	)
)
