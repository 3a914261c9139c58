package rbacerrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrInvalidEnforceRequest = apperror.New(
		apperror.CodeInvalidInput,
		"role, resource and action are required",
		http.StatusBadRequest,
	)

	ErrPermissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Permission not found",
		http.StatusNotFound,
	)

	ErrPermissionExists = apperror.New(
		apperror.CodeConflict,
		"Permission already granted",
		http.StatusConflict,
	)
)
