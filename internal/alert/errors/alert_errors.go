package alerterrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrInvalidAlertID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid alert id",
		http.StatusBadRequest,
	)
	ErrUserIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"userId is required",
		http.StatusBadRequest,
	)
	ErrAlertNotFound = apperror.New(
		apperror.CodeNotFound,
		"Alert not found",
		http.StatusNotFound,
	)
)
