package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleBindingError answers a failed ShouldBind* call with a 400 envelope that lists
// every rejected field.
func HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &validationErrs):
		messages := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			messages = append(messages, formatValidationError(fe))
		}
		AbortWithError(c, http.StatusBadRequest, strings.Join(messages, "; "))
	case errors.As(err, &syntaxErr):
		AbortWithError(c, http.StatusBadRequest, "malformed JSON body")
	case errors.As(err, &typeErr):
		AbortWithError(c, http.StatusBadRequest, typeErr.Field+" has the wrong type")
	default:
		AbortWithError(c, http.StatusBadRequest, "invalid request: "+err.Error())
	}
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldPath(e.Namespace())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gt":
		return field + " must be greater than " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// jsonFieldPath drops the root struct name and lowercases the first letter of each
// segment, turning "CreateCourseRequest.Schedule.StartTime" into "schedule.startTime".
func jsonFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		if p == "ID" {
			parts[i] = "id"
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
