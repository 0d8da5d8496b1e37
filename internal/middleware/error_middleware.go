package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/logger"
)

// statusFor maps an application error onto the HTTP status (and envelope code) it answers with.
func statusFor(err error) int {
	switch apperrors.Kind(err) {
	case apperrors.ErrValidationFailed, apperrors.ErrBadRequest, apperrors.ErrConflict:
		return http.StatusBadRequest
	case apperrors.ErrResourceNotFound:
		return http.StatusNotFound
	case apperrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrPermissionDenied:
		if errors.Is(err, apperrors.ErrTokenInvalid) || errors.Is(err, apperrors.ErrTokenExpired) {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes an error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Error(status, message))
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
		AbortWithError(c, status, "Internal server error")
		return
	}

	if status == http.StatusServiceUnavailable {
		logger.Warn().Err(err).Str("path", c.FullPath()).Msg("Dependency unavailable")
	}

	AbortWithError(c, status, err.Error())
}
