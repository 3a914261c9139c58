package projecterrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)

	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid account or user reference",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project status",
		http.StatusBadRequest,
	)

	ErrInvalidStepStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid step status",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be YYYY-MM-DD or RFC 3339",
		http.StatusBadRequest,
	)

	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service Not Found",
		http.StatusNotFound,
	)

	ErrNoteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Note not found",
		http.StatusNotFound,
	)

	ErrStorageUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"File storage is not configured",
		http.StatusServiceUnavailable,
	)
)
