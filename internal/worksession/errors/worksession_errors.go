package worksessionerrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrAlreadyStarted = apperror.New(
		apperror.CodeInvalidState,
		"You have already started today!",
		http.StatusBadRequest,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Session not found",
		http.StatusNotFound,
	)
	ErrAlreadyStopped = apperror.New(
		apperror.CodeInvalidState,
		"Already stopped",
		http.StatusBadRequest,
	)
	ErrSessionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"sessionId or userId is required",
		http.StatusBadRequest,
	)
	ErrRangeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Start and end dates are required",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"userId, year & month required!",
		http.StatusBadRequest,
	)
)
