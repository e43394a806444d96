package apperror

import "net/http"

var (
	ErrAccessDenied = New(
		CodeAccessDenied,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrLoginFailed = New(
		CodeLoginFailed,
		"Invalid name or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		CodeInvalidToken,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrTooManyRequests = New(
		CodeTooMany,
		"Too many requests, slow down",
		http.StatusTooManyRequests,
	)

	ErrProcessing = New(
		CodeProcessing,
		"A request with this idempotency key is still being processed",
		http.StatusConflict,
	)
)

func AlreadyExists(message string) *AppError {
	return New(CodeAlreadyExists, message, http.StatusConflict)
}

func WrongValue(message string) *AppError {
	return New(CodeWrongValue, message, http.StatusConflict)
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}
