package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		errorType apperrors.ErrorType
		status    int
	}{
		{apperrors.ErrorTypeValidation, http.StatusUnprocessableEntity},
		{apperrors.ErrorTypeNotFound, http.StatusNotFound},
		{apperrors.ErrorTypeBadRequest, http.StatusBadRequest},
		{apperrors.ErrorTypeInternal, http.StatusInternalServerError},
		{apperrors.ErrorType("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			err := &apperrors.AppError{Type: tt.errorType}
			assert.Equal(t, tt.status, err.HTTPStatus())
		})
	}
}

func TestBadRequest(t *testing.T) {
	err := fmt.Errorf("decoding: %w", apperrors.BadRequest("malformed body"))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	assert.Equal(t, "BAD_REQUEST: malformed body", appErr.Error())
}

func TestInternal(t *testing.T) {
	cause := errors.New("pq: connection refused")

	err := apperrors.Internal(cause)

	assert.Equal(t, apperrors.InternalMessage, err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL: internal server error: pq: connection refused", err.Error())
}
