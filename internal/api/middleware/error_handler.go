package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"transcript-control/internal/api/errors"
)

// ErrorHandler recovers panics raised by handlers (including HandleError for
// non-API errors) and renders them as a generic internal error. The detail is
// only logged.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("Internal server error")
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError is a helper function for handlers to return errors
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if apiErr, ok := err.(*errors.APIError); ok {
		apiErr.RequestID = GetRequestID(c)
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	// Not an APIError: let ErrorHandler log it and answer generically
	panic(err)
}
