package quotationerrors

import (
	"net/http"

	"go-crm/internal/shared/apperror"
)

var (
	ErrQuotationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Quotation not found.",
		http.StatusNotFound,
	)

	ErrInvalidQuotationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid quotation ID",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of Draft, Sent, Accepted, Rejected",
		http.StatusBadRequest,
	)

	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid business or service reference",
		http.StatusBadRequest,
	)

	ErrInvalidLineItem = apperror.New(
		apperror.CodeInvalidInput,
		"Line items need a description, a positive quantity and a non-negative unit price",
		http.StatusBadRequest,
	)

	ErrDuplicateNumber = apperror.New(
		apperror.CodeConflict,
		"A quotation with this number was just created. Please try again.",
		http.StatusConflict,
	)

	ErrFollowUpNotFound = apperror.New(
		apperror.CodeNotFound,
		"Follow-up not found.",
		http.StatusNotFound,
	)

	ErrInvalidFollowUpStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Follow-up status must be pending or completed",
		http.StatusBadRequest,
	)
)
