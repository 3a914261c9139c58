package subscriptionerrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)

	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid subscription ID",
		http.StatusBadRequest,
	)

	ErrInvalidBillingCycle = apperror.New(
		apperror.CodeInvalidInput,
		"Billing cycle must be Monthly, Yearly or One Time",
		http.StatusBadRequest,
	)

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

	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)

	ErrSubscriptionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subscription Not Found",
		http.StatusNotFound,
	)

	ErrAlreadyCancelled = apperror.New(
		apperror.CodeInvalidState,
		"Subscription is already cancelled",
		http.StatusConflict,
	)
)
