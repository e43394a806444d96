package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeWrongValue    = "WRONG_VALUE"
	CodeLoginFailed   = "LOGIN_FAILED"
	CodeAccessDenied  = "ACCESS_DENIED"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeTooMany       = "TOO_MANY_REQUESTS"
	CodeProcessing    = "PROCESSING"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
