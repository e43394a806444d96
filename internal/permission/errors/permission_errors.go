package permissionerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrPermissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Permission not found",
		http.StatusNotFound,
	)
	ErrPermissionAlreadyExists = apperror.AlreadyExists("Permission with the same description already exists")
	ErrEmptyDescription        = apperror.WrongValue("Permission description must not be empty")
)
