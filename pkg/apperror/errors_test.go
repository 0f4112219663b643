package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationErrorUsesFirstField(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Field: "items[0].qty", Message: "must be >= 1"},
		{Field: "cashier_name", Message: "is required"},
	})

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "items[0].qty must be >= 1", err.Error())
	assert.Len(t, err.Errors, 2)
}

func TestNewAlreadyRegisteredError(t *testing.T) {
	err := NewAlreadyRegisteredError("20240501_1")

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.Equal(t, CodeAlreadyRegistered, err.Message)
	assert.Equal(t, "20240501_1", err.Details["transaction_id"])
}

func TestGetAppError(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	assert.True(t, IsAppError(wrapped))
	assert.Same(t, ErrNotFound, GetAppError(wrapped))

	plain := GetAppError(errors.New("disk I/O error"))
	assert.Equal(t, http.StatusInternalServerError, plain.Code)
	assert.Equal(t, "disk I/O error", plain.Message)
}
