package autherrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	// ErrLoginFailed is returned for an unknown name and for a wrong password alike.
	ErrLoginFailed = apperror.ErrLoginFailed

	ErrInvalidToken = apperror.ErrInvalidToken

	ErrTokenExpired = apperror.New(
		apperror.CodeInvalidToken,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrUnauthenticated = apperror.ErrUnauthorized

	ErrForbidden = apperror.ErrAccessDenied

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
