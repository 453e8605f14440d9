package middleware

import (
	"log/slog"
	"strings"
	"unicode"

	deliverycontext "vesselwatch/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied ids; longer ones are replaced.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger tagged with it
type RequestIDMiddleware struct {
	logger  *slog.Logger
	service string
}

// NewRequestIDMiddleware creates a Request ID middleware whose loggers also carry the serving component
func NewRequestIDMiddleware(logger *slog.Logger, service string) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger:  logger,
		service: service,
	}
}

// Process reuses a well-formed X-Request-Id header or generates a new id
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("component", m.service),
		)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID rejects empty, oversized or non-printable ids so they never reach logs.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	return strings.IndexFunc(id, func(r rune) bool {
		return r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r)
	}) < 0
}
