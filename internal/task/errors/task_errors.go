package taskerrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found.",
		http.StatusNotFound,
	)

	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task ID",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of To Do, In Progress, Review, Completed, Overdue",
		http.StatusBadRequest,
	)

	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user, account or service reference",
		http.StatusBadRequest,
	)
)
