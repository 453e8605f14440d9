package service

import (
	"context"
	"time"
)

// Event types carried on the topic.
const (
	EventTypePositionReported   = "position.reported"
	EventTypeTokenInvalidated   = "push_token.invalidated"
	EventTypeNotificationStatus = "notification.status_changed"
)

// PositionEvent is a position sample travelling through Pub/Sub to the engine.
type PositionEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ShipID     string    `json:"shipId"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	ObservedAt time.Time `json:"observedAt"`
	Source     string    `json:"source"`
}

// TokenInvalidatedEvent asks the token owner service to drop a dead device token.
type TokenInvalidatedEvent struct {
	UserID         string `json:"user_id"`
	Token          string `json:"token"`
	NotificationID string `json:"notification_id"`
}

// NotificationStatusEvent announces a persisted status transition.
type NotificationStatusEvent struct {
	NotificationID string    `json:"notification_id"`
	ShipID         string    `json:"ship_id"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Reason         string    `json:"reason,omitempty"`
	RetryNumber    int       `json:"retry_number"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPosition forwards a position sample for asynchronous evaluation
	PublishPosition(ctx context.Context, event *PositionEvent) error

	// PublishTokenInvalidated reports a permanently rejected device token
	PublishTokenInvalidated(ctx context.Context, event *TokenInvalidatedEvent) error

	// PublishNotificationStatus announces a notification status change
	PublishNotificationStatus(ctx context.Context, event *NotificationStatusEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
