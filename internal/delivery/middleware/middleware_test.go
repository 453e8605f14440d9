package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vesselwatch/config"
	deliverycontext "vesselwatch/internal/delivery/context"
	domainerrors "vesselwatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), "api")

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "client id kept", header: "trace-123", keep: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "a b"},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "non ascii id replaced", header: "ship-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.RequestIDFrom(c.Request().Context())
				deliverycontext.LoggerFrom(c.Request().Context(), nil).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.RequestID(c))
			if tt.keep {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
				assert.Len(t, seen, 36)
			}
			assert.Contains(t, buf.String(), "component=api")
		})
	}
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, accessLogLevel(http.StatusOK))
	assert.Equal(t, slog.LevelDebug, accessLogLevel(http.StatusAccepted))
	assert.Equal(t, slog.LevelInfo, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, slog.LevelWarn, accessLogLevel(http.StatusUnauthorized))
	assert.Equal(t, slog.LevelWarn, accessLogLevel(http.StatusForbidden))
	assert.Equal(t, slog.LevelError, accessLogLevel(http.StatusServiceUnavailable))
}

func TestLoggerMiddleware(t *testing.T) {
	run := func(t *testing.T, debug bool, path string, handler echo.HandlerFunc) string {
		t.Helper()

		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg, "/health")

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		c.SetPath(path)
		_ = m.Handle(handler)(c)

		return buf.String()
	}
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("success logged only in debug", func(t *testing.T) {
		assert.Empty(t, run(t, false, "/api/v1/notifications", ok))
		assert.Contains(t, run(t, true, "/api/v1/notifications", ok), "status=200")
	})

	t.Run("skipped path", func(t *testing.T) {
		assert.Empty(t, run(t, true, "/health", ok))
	})

	t.Run("uncommitted app error uses its status", func(t *testing.T) {
		out := run(t, false, "/api/v1/notifications/:id", func(echo.Context) error {
			return domainerrors.ErrNotificationNotFound
		})
		assert.Contains(t, out, "status=404")
		assert.Contains(t, out, "level=INFO")
	})

	t.Run("unknown error is a 500", func(t *testing.T) {
		out := run(t, false, "/api/v1/positions", func(echo.Context) error {
			return assert.AnError
		})
		assert.Contains(t, out, "status=500")
		assert.Contains(t, out, "level=ERROR")
	})
}
