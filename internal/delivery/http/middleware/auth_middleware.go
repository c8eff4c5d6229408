package middleware

import (
	"net/http"
	"slices"
	"strings"

	"vtpgate/internal/delivery/http/response"
	"vtpgate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for operator JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set operator info on the context for handlers to use
		c.Set("operatorID", claims.OperatorID)
		c.Set("roles", claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the operator has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get("roles")
			roles, ok := rolesVal.([]string)
			if !ok {
				return response.Error(c, http.StatusForbidden, "ROLE_MISSING",
					"Permission denied: role information missing", nil)
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Error(c, http.StatusForbidden, "ROLE_REQUIRED",
					"Permission denied: require '"+requiredRole+"' role", nil)
			}

			return next(c)
		}
	}
}
