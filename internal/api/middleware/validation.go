package middleware

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"transcript-control/internal/api/errors"
)

func init() {
	// Report json/form names instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	}
}

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest validates both struct tags and domain rules
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("Validation failed", fieldErrors(err, "request", "invalid JSON format"))
	}

	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateQuery validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return errors.NewValidationError("Invalid query parameters", fieldErrors(err, "query", "invalid query parameters"))
	}

	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func fieldErrors(err error, fallbackField, fallbackMessage string) map[string]string {
	details := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		details[fallbackField] = fallbackMessage
		return details
	}

	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			details[field] = "is required"
		case "min":
			details[field] = fmt.Sprintf("must be at least %s", fieldError.Param())
		case "max":
			details[field] = fmt.Sprintf("must be at most %s", fieldError.Param())
		case "gt":
			details[field] = fmt.Sprintf("must be greater than %s", fieldError.Param())
		case "oneof":
			details[field] = "must be one of: " + fieldError.Param()
		default:
			details[field] = "is invalid"
		}
	}
	return details
}
