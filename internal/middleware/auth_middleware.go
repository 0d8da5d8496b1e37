package middleware

import (
	"errors"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/auth"
)

// AuthMiddleware guards service-to-service endpoints
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// ServiceAuth requires a valid service token. When services are listed, the token's
// service claim must be one of them. Every request passes when no signing secret is
// configured; config validation only allows that for the single-process role.
func (m *AuthMiddleware) ServiceAuth(services ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.jwtService.Enabled() {
			c.Next()
			return
		}

		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "service token required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenExpired, "service token expired"))
				return
			}
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "invalid service token"))
			return
		}

		if len(services) > 0 && !slices.Contains(services, claims.Service) {
			HandleAPIError(c, apperrors.NewForbiddenError("service "+claims.Service+" may not call this endpoint"))
			return
		}

		c.Set("callerService", claims.Service)
		c.Next()
	}
}
