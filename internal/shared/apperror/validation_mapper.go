package apperror

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// formatFieldName turns "registrationPlate" or "pick_up_date" into "Registration Plate".
func formatFieldName(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// FieldError names one failed binding rule. The json field name is reported when Init has run.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// MapValidationError reports the first failing field in the message and every failing
// field in the details.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]FieldError, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}

		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField).WithDetails(fields)
		default:
			return InvalidField(humanReadableField).WithDetails(fields)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
