package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/service"
	servicemocks "vesselwatch/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProtected(t *testing.T, m *AuthMiddleware, authHeader string, roles ...string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var subject string
	final := func(c echo.Context) error {
		subject = deliverycontext.ActorFrom(c.Request().Context())

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(m.RequireRole(roles...)(final))(c))

	return rec, subject
}

func newAuth(verifier service.TokenVerifier) *AuthMiddleware {
	return NewAuthMiddleware(AuthMiddlewareParams{Verifier: verifier, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestAuthMiddleware_DisabledPassesThrough(t *testing.T) {
	rec, _ := runProtected(t, newAuth(nil), "", "admin")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	verifier := servicemocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("operator-token").Return(&service.OperatorClaims{Subject: "op-1", Roles: []string{"operator"}}, nil).Maybe()
	verifier.EXPECT().Verify("bad-token").Return(nil, errors.New("signature is invalid")).Maybe()
	m := newAuth(verifier)

	t.Run("missing token", func(t *testing.T) {
		rec, _ := runProtected(t, m, "", "operator")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec, _ := runProtected(t, m, "Basic abc", "operator")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec, _ := runProtected(t, m, "Bearer bad-token", "operator")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("role held", func(t *testing.T) {
		rec, subject := runProtected(t, m, "Bearer operator-token", "operator", "admin")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "op-1", subject)
	})

	t.Run("role missing", func(t *testing.T) {
		rec, _ := runProtected(t, m, "Bearer operator-token", "admin")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)
	})
}
