package rest

import (
	"errors"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// classify maps any error returned by the use cases onto an AppError.
// Unrecognized errors become INTERNAL with a generic message.
func classify(err error) *apperrors.AppError {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var notificationErr *validation.NotificationError
	if errors.As(err, &notificationErr) {
		details := make([]string, 0, len(notificationErr.Errors()))
		for _, e := range notificationErr.Errors() {
			details = append(details, e.Message)
		}
		return &apperrors.AppError{
			Type:    apperrors.ErrorTypeValidation,
			Message: notificationErr.Error(),
			Details: details,
			Err:     err,
		}
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return &apperrors.AppError{Type: apperrors.ErrorTypeNotFound, Message: notFound.Error(), Err: err}
	}

	if errors.Is(err, domain.ErrInvalidIdentifier) {
		return &apperrors.AppError{Type: apperrors.ErrorTypeBadRequest, Message: err.Error(), Err: err}
	}

	return apperrors.Internal(err)
}
