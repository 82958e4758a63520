package services

import (
	"context"
	stderrors "errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"transcript-control/internal/api/errors"
	"transcript-control/internal/app/repository"
)

// mapError converts a repository error into an API error. Unexpected errors
// are logged and replaced by an internal error carrying only failMessage.
func mapError(logger *zap.Logger, resource, failMessage string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var fieldErr *repository.FieldError
	if stderrors.As(err, &fieldErr) {
		return errors.NewValidationError(fieldErr.Error(), map[string]string{fieldErr.Field: fieldErr.Message})
	}
	if stderrors.Is(err, repository.ErrInvalidInput) {
		return errors.NewValidationError(err.Error(), nil)
	}
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NewNotFoundError(resource)
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return errors.NewConflictError(resource + " is still referenced")
		case "23505":
			return errors.NewConflictError(resource + " already exists")
		}
	}

	if stderrors.Is(err, context.Canceled) {
		logger.Debug("request cancelled", zap.String("resource", resource))
	} else {
		logger.Error(failMessage, zap.Error(err))
	}
	return errors.NewInternalError(failMessage)
}
