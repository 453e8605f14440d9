package service

import (
	"context"
)

// PushResult is the provider's verdict for one token.
type PushResult string

const (
	// PushAccepted means the provider took the message for delivery.
	PushAccepted PushResult = "ACCEPTED"
	// PushDelivered means the provider confirmed delivery to the device.
	PushDelivered PushResult = "DELIVERED"
	// PushRejectedPermanent means the token will never work again.
	PushRejectedPermanent PushResult = "REJECTED_PERMANENT"
	// PushRejectedTransient means the send may succeed if retried.
	PushRejectedTransient PushResult = "REJECTED_TRANSIENT"
)

// PushMessage is the payload of one push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// TokenOutcome is the per-token result of a send.
type TokenOutcome struct {
	Token  string
	Result PushResult
	Err    error
}

// PushSender defines the interface for push notification providers.
type PushSender interface {
	// Send delivers a message to a single device token.
	Send(ctx context.Context, token string, message *PushMessage) (*TokenOutcome, error)

	// SendBatch delivers a message to many tokens. The returned outcomes are in token order.
	// A non-nil error means the provider could not be reached at all.
	SendBatch(ctx context.Context, tokens []string, message *PushMessage) ([]*TokenOutcome, error)

	// MaxBatchSize is the largest token slice SendBatch accepts.
	MaxBatchSize() int
}
