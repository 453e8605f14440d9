package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"vesselwatch/config"
	deliverycontext "vesselwatch/internal/delivery/context"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes an access log line per request.
// Outside debug mode only failed and rejected requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	skip   map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware; skipPaths are never logged
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, skipPaths ...string) *LoggerMiddleware {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		skip:   skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.skip[c.Path()]; ok {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	status := c.Response().Status
	if err != nil && !c.Response().Committed {
		// the central error handler has not written yet
		status = http.StatusInternalServerError
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			status = appErr.HTTPCode()
		} else if he, ok := errors.AsType[*echo.HTTPError](err); ok {
			status = he.Code
		}
	}

	level := accessLogLevel(status)
	if !m.debug && level == slog.LevelDebug {
		return
	}

	req := c.Request()
	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	deliverycontext.LoggerFrom(req.Context(), m.logger).LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

// accessLogLevel maps a response status to a log level; 2xx/3xx are debug noise.
func accessLogLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusTooManyRequests:
		return slog.LevelWarn
	case status >= http.StatusBadRequest:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
