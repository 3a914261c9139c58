package processsteperrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrGroupExists = apperror.New(
		apperror.CodeConflict,
		"Step type already exists. Please use PUT to update.",
		http.StatusConflict,
	)

	ErrStepsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Steps are required",
		http.StatusBadRequest,
	)

	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Step group not found",
		http.StatusNotFound,
	)

	ErrStepNotFound = apperror.New(
		apperror.CodeNotFound,
		"Individual step not found",
		http.StatusNotFound,
	)

	ErrInvalidStepID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid step ID",
		http.StatusBadRequest,
	)
)
