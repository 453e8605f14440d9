// Package context carries per-request values (request id, scoped logger, caller) across layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	keyRequestID ContextKey = "request_id"
	keyLogger    ContextKey = "logger"
	keyActor     ContextKey = "actor"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// RequestID returns the request ID of an echo request.
// It checks the echo.Context, then the request context, and generates one as a last resort.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := RequestIDFrom(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// RequestIDFrom returns the request ID carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// LoggerFrom returns the request-scoped logger, or fallback when ctx has none.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithActor records the authenticated caller and tags the scoped logger with it.
func WithActor(ctx context.Context, subject string, fallback *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyActor, subject)

	return WithLogger(ctx, LoggerFrom(ctx, fallback).With(slog.String("actor", subject)))
}

// ActorFrom returns the authenticated caller carried by ctx, or "" for anonymous calls.
func ActorFrom(ctx context.Context) string {
	if subject, ok := ctx.Value(keyActor).(string); ok {
		return subject
	}

	return ""
}
