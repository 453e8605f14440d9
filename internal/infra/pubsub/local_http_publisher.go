package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vesselwatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/positions-push"

// localHTTPPublisher implements EventPublisher by posting Pub/Sub push envelopes
// to the engine's push endpoint, simulating a push subscription in development.
// Only positions have a local consumer; other events are logged.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishPosition pushes a position sample to the local engine
func (p *localHTTPPublisher) PublishPosition(ctx context.Context, event *service.PositionEvent) error {
	msg, err := encodePosition(event)
	if err != nil {
		return err
	}

	if err := p.push(ctx, msg, event.RequestID); err != nil {
		return err
	}

	p.logger.Debug("[LocalPubSub] Position pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("ship_id", event.ShipID),
	)

	return nil
}

func (p *localHTTPPublisher) push(ctx context.Context, msg *outbound, requestID string) error {
	var envelope PushMessage
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("engine returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// PublishTokenInvalidated logs the invalid token; no local service consumes it
func (p *localHTTPPublisher) PublishTokenInvalidated(_ context.Context, event *service.TokenInvalidatedEvent) error {
	p.logger.Info("[LocalPubSub] Token invalidated",
		slog.String("user_id", event.UserID),
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

// PublishNotificationStatus logs the status change; no local service consumes it
func (p *localHTTPPublisher) PublishNotificationStatus(_ context.Context, event *service.NotificationStatusEvent) error {
	p.logger.Debug("[LocalPubSub] Notification status changed",
		slog.String("notification_id", event.NotificationID),
		slog.String("from", event.From),
		slog.String("to", event.To),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
