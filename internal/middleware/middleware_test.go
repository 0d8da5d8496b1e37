package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/auth"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("bad"), http.StatusBadRequest},
		{"bad request", apperrors.NewBadRequestError("bad"), http.StatusBadRequest},
		{"conflict", apperrors.ErrCapacityExceeded, http.StatusBadRequest},
		{"wrapped conflict", fmt.Errorf("%w: more", apperrors.ErrDuplicateEnrollment), http.StatusBadRequest},
		{"not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"unavailable", apperrors.NewUnavailableError("catalog down", assert.AnError), http.StatusServiceUnavailable},
		{"forbidden", apperrors.NewForbiddenError("no"), http.StatusForbidden},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestJSONFieldPath(t *testing.T) {
	assert.Equal(t, "schedule.startTime", jsonFieldPath("CreateCourseRequest.Schedule.StartTime"))
	assert.Equal(t, "instructor.id", jsonFieldPath("CreateCourseRequest.Instructor.ID"))
	assert.Equal(t, "capacity", jsonFieldPath("CreateCourseRequest.Capacity"))
	assert.Equal(t, "code", jsonFieldPath("Code"))
}

func serviceAuthRouter(tokens *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()))
	echo := func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("callerService"))
	}
	authMiddleware := NewAuthMiddleware(tokens)
	router.PUT("/seats", authMiddleware.ServiceAuth(), echo)
	router.PUT("/scoped", authMiddleware.ServiceAuth(auth.EnrollmentService), echo)
	return router
}

func TestServiceAuth(t *testing.T) {
	tokens := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenIssuer: "campus.catalog"})
	valid, err := tokens.GenerateServiceToken("enrollment-service")
	require.NoError(t, err)

	expired, err := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "secret", TokenIssuer: "campus.catalog", TokenExp: time.Nanosecond,
	}).GenerateServiceToken("enrollment-service")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	foreign, err := auth.NewJWTService(auth.JWTConfig{SecretKey: "other", TokenIssuer: "campus.catalog"}).
		GenerateServiceToken("enrollment-service")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "enrollment-service"},
		{"missing header", "", http.StatusUnauthorized, "service token required"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "service token expired"},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, "invalid service token"},
	}

	router := serviceAuthRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/seats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestServiceAuthDisabledWithoutSecret(t *testing.T) {
	router := serviceAuthRouter(auth.NewJWTService(auth.JWTConfig{}))

	req := httptest.NewRequest(http.MethodPut, "/seats", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestServiceAuthRestrictsCaller(t *testing.T) {
	tokens := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenIssuer: "campus.catalog"})
	router := serviceAuthRouter(tokens)

	tests := []struct {
		name       string
		service    string
		wantStatus int
		wantBody   string
	}{
		{"listed service", auth.EnrollmentService, http.StatusOK, auth.EnrollmentService},
		{"other service", "reporting-service", http.StatusForbidden, "service reporting-service may not call this endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.GenerateServiceToken(tt.service)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, "/scoped", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}

	req := httptest.NewRequest(http.MethodPut, "/scoped", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
