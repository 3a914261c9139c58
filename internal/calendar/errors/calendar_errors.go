package calendarerrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Event not found",
		http.StatusNotFound,
	)

	ErrInvalidEventID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid event ID",
		http.StatusBadRequest,
	)

	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Event end must not be before its start",
		http.StatusBadRequest,
	)

	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid account or service reference",
		http.StatusBadRequest,
	)
)
