package employeeerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.AlreadyExists("Employee with the same name already exists")
	ErrEmptyName             = apperror.WrongValue("Employee name must not be empty")
	ErrEmptyPassword         = apperror.WrongValue("Password must not be empty")
	ErrInvalidPermission     = apperror.WrongValue("Permission id must be 1 (ADMIN), 2 (USER) or 3 (DRIVER)")
	ErrInvalidEmployeeID     = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
