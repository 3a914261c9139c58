package accounterrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)

	ErrInvalidAccountID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid account ID",
		http.StatusBadRequest,
	)

	ErrDuplicateBusinessName = apperror.New(
		apperror.CodeConflict,
		"An account with this business name already exists.",
		http.StatusConflict,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid account status",
		http.StatusBadRequest,
	)

	ErrInvalidBillingCycle = apperror.New(
		apperror.CodeInvalidInput,
		"Billing cycle must be Monthly, Yearly or One Time",
		http.StatusBadRequest,
	)

	ErrInvalidLeadType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid type of lead",
		http.StatusBadRequest,
	)

	ErrNoAccountIDs = apperror.New(
		apperror.CodeInvalidInput,
		"No account IDs provided",
		http.StatusBadRequest,
	)

	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service Not Found",
		http.StatusNotFound,
	)

	ErrFollowUpNotFound = apperror.New(
		apperror.CodeNotFound,
		"Follow-up not found",
		http.StatusNotFound,
	)

	ErrInvalidFollowUpStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Follow-up status must be pending or completed",
		http.StatusBadRequest,
	)
)
