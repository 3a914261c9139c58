package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// businessName -> Business Name, reject_reason -> Reject Reason
func formatFieldName(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns a binding failure into a 400 naming the first
// offending field. Malformed bodies get a generic message.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeValidation, "Invalid input", http.StatusBadRequest).WithDetails(err.Error())
	}

	e := errs[0]
	field := formatFieldName(e.Field())
	var appErr *AppError
	switch e.Tag() {
	case "required", "required_without", "required_if", "notblank":
		appErr = RequiredField(field)
	case "oneof":
		appErr = InvalidField(field).WithMessage(fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(e.Param()), ", ")))
	case "min", "gte":
		appErr = InvalidField(field).WithMessage(fmt.Sprintf("%s must be at least %s", field, e.Param()))
	default:
		appErr = InvalidField(field)
	}
	return appErr.WithDetails(err.Error())
}
