package usererrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)

	ErrInvalidPresence = apperror.New(
		apperror.CodeInvalidInput,
		"Presence must be one of online, away, busy, offline",
		http.StatusBadRequest,
	)

	ErrInvalidCurrentPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrInvalidTeamID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid team ID",
		http.StatusBadRequest,
	)

	ErrTeamLeaderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Team leader not found",
		http.StatusNotFound,
	)

	ErrNotATeamLeader = apperror.New(
		apperror.CodeInvalidInput,
		"Assigned user is not a Team Leader",
		http.StatusBadRequest,
	)

	ErrTeamLeaderTaken = apperror.New(
		apperror.CodeConflict,
		"This user is already a Team Leader for another team",
		http.StatusConflict,
	)
)
