package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ActorContextKey is the echo.Context key under which Authenticate stores the
// verified actor.
const ActorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the resulting
// actor on the request context for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		roles := entity.RolesFromStrings(claims.Roles)
		if len(roles) == 0 {
			return response.Unauthorized(c, "Token carries no recognized role")
		}

		c.Set(ActorContextKey, usecase.Actor{
			AccountID: claims.AccountID,
			Role:      roles[0],
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that restricts a route to the given
// roles. Admins always pass. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(ActorContextKey).(usecase.Actor)
			if !ok {
				return response.Unauthorized(c, "Authentication required")
			}

			if actor.IsAdmin() || entity.Roles(allowed).Contains(actor.Role) {
				return next(c)
			}

			return response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
		}
	}
}
