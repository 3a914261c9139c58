package brandserviceerrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service Not Found",
		http.StatusNotFound,
	)

	ErrPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Plan Not Found",
		http.StatusNotFound,
	)

	ErrInvalidServiceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid service ID",
		http.StatusBadRequest,
	)

	ErrInvalidPlanID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid plan ID",
		http.StatusBadRequest,
	)

	ErrServiceCodeTaken = apperror.New(
		apperror.CodeConflict,
		"A service with the same code already exists",
		http.StatusConflict,
	)
)
