package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-crm/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		sentinel := apperror.New(apperror.CodeConflict, "duplicate", http.StatusConflict)
		wrapped := fmt.Errorf("create: %w", sentinel.WithDetails(map[string]string{"id": "1"}))

		got := apperror.ToHTTP(wrapped)

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "duplicate", got.Message)
		assert.Equal(t, map[string]string{"id": "1"}, got.Details)
		assert.ErrorIs(t, wrapped, sentinel)
	})

	t.Run("unknown error surfaces as 500 with message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "connection reset", got.Message)
	})
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		BusinessName string `validate:"required"`
		Email        string `validate:"email"`
	}
	v := validator.New()

	err := v.Struct(payload{Email: "nope"})
	mapped := apperror.MapValidationError(err)

	got := apperror.ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, "Business Name is required", got.Message)

	err = v.Struct(payload{BusinessName: "Acme", Email: "nope"})
	got = apperror.ToHTTP(apperror.MapValidationError(err))
	assert.Equal(t, "Email is invalid", got.Message)
}

func TestMapValidationError_OneOfAndMalformed(t *testing.T) {
	type payload struct {
		Status string `validate:"oneof=Approved Rejected"`
	}
	err := validator.New().Struct(payload{Status: "Maybe"})

	got := apperror.ToHTTP(apperror.MapValidationError(err))
	assert.Equal(t, apperror.CodeValidation, got.Code)
	assert.Equal(t, "Status must be one of: Approved, Rejected", got.Message)

	got = apperror.ToHTTP(apperror.MapValidationError(errors.New("unexpected EOF")))
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, "Invalid input", got.Message)
	assert.Equal(t, "unexpected EOF", got.Details)
}

func TestConfigure_NotBlankUsesJSONNames(t *testing.T) {
	type payload struct {
		BusinessName string `json:"businessName" validate:"required,notblank"`
	}
	v := validator.New()
	apperror.Configure(v)

	got := apperror.ToHTTP(apperror.MapValidationError(v.Struct(payload{BusinessName: "   "})))
	assert.Equal(t, "Business Name is required", got.Message)
	assert.NoError(t, v.Struct(payload{BusinessName: "Acme"}))
}
