package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()

	t.Run("echo context wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", RequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "from-ctx", RequestID(c))
	})

	t.Run("generates when missing", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.Len(t, RequestID(c), 36)
	})
}

func TestLoggerFrom(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, LoggerFrom(WithLogger(context.Background(), scoped), fallback))
}

func TestWithActor(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithActor(context.Background(), "op-7", base)
	assert.Equal(t, "op-7", ActorFrom(ctx))
	assert.Empty(t, ActorFrom(context.Background()))

	LoggerFrom(ctx, nil).Info("cancelled")
	assert.Contains(t, buf.String(), "actor=op-7")
}
