package apperror_test

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-erp/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vehicleBody struct {
	RegistrationPlate string `json:"registrationPlate" validate:"required"`
	Email             string `json:"email" validate:"omitempty,email"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func TestMapValidationError(t *testing.T) {
	t.Run("first field names the message and every field is listed", func(t *testing.T) {
		err := newValidator().Struct(vehicleBody{Email: "not-an-email"})
		require.Error(t, err)

		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
		assert.Equal(t, "Registration Plate is required", httpErr.Message)
		assert.Equal(t, []apperror.FieldError{
			{Field: "registrationPlate", Rule: "required"},
			{Field: "email", Rule: "email"},
		}, httpErr.Details)
	})

	t.Run("non validation error has no details", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(errors.New("unexpected EOF")))

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "Invalid input", httpErr.Message)
		assert.Nil(t, httpErr.Details)
	})
}

func TestAppError_WithDetails(t *testing.T) {
	base := apperror.WrongValue("Liters must be positive")
	withDetails := base.WithDetails(map[string]any{"liters": -1})

	assert.Nil(t, base.Details)
	assert.Equal(t, base.Code, withDetails.Code)
	assert.Equal(t, map[string]any{"liters": -1}, withDetails.Details)
}

func TestToHTTP_UnknownErrorIsInternal(t *testing.T) {
	httpErr := apperror.ToHTTP(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
	assert.Nil(t, httpErr.Details)
}
