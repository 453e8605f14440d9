package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"vesselwatch/internal/delivery/api/response"
	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const keyRoles = "roles"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier `optional:"true"`
	Logger   *slog.Logger
}

// AuthMiddleware authenticates operator bearer tokens and enforces roles.
// With no verifier configured both middlewares pass every request through.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier, logger: params.Logger}
}

// Authenticate validates the bearer token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.verifier == nil {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Bearer token is required", nil)
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			deliverycontext.LoggerFrom(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
		}

		c.Set(keyRoles, claims.Roles)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithActor(c.Request().Context(), claims.Subject, m.logger)))

		return next(c)
	}
}

// RequireRole admits callers holding at least one of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.verifier == nil {
				return next(c)
			}

			held, _ := c.Get(keyRoles).([]string)
			for _, role := range roles {
				if slices.Contains(held, role) {
					return next(c)
				}
			}

			return response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"Requires one of the roles: "+strings.Join(roles, ", "), nil)
		}
	}
}
