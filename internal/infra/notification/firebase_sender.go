// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"vesselwatch/config"
	"vesselwatch/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseMaxBatch is the multicast limit of FCM
const firebaseMaxBatch = 500

// messagingClient is the part of *messaging.Client the sender uses
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseSender struct {
	client messagingClient
	logger *slog.Logger
}

// NewPushSender creates the push provider. Without Firebase credentials it
// returns a sender that only logs, so local environments run end to end.
func NewPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase not configured, push messages will only be logged")

		return &logSender{logger: logger}, nil
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client, logger: logger}, nil
}

// Send delivers a message to a single device token
func (s *firebaseSender) Send(ctx context.Context, token string, message *service.PushMessage) (*service.TokenOutcome, error) {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: notificationOf(message),
		Data:         message.Data,
		Android:      androidConfig(),
	})
	if err != nil {
		return classify(token, err), nil
	}

	return &service.TokenOutcome{Token: token, Result: service.PushAccepted}, nil
}

// SendBatch delivers a message to at most MaxBatchSize tokens
func (s *firebaseSender) SendBatch(ctx context.Context, tokens []string, message *service.PushMessage) ([]*service.TokenOutcome, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > firebaseMaxBatch {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), firebaseMaxBatch)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: notificationOf(message),
		Data:         message.Data,
		Android:      androidConfig(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	outcomes := make([]*service.TokenOutcome, len(tokens))
	for idx, token := range tokens {
		if idx >= len(response.Responses) || response.Responses[idx] == nil {
			outcomes[idx] = &service.TokenOutcome{
				Token:  token,
				Result: service.PushRejectedTransient,
				Err:    errors.New("missing response for token"),
			}

			continue
		}

		sendResponse := response.Responses[idx]
		if sendResponse.Success {
			outcomes[idx] = &service.TokenOutcome{Token: token, Result: service.PushAccepted}

			continue
		}
		outcomes[idx] = classify(token, sendResponse.Error)
	}

	s.logger.Debug("Multicast sent",
		slog.Int("success", response.SuccessCount),
		slog.Int("failure", response.FailureCount),
	)

	return outcomes, nil
}

// MaxBatchSize returns the FCM multicast limit
func (s *firebaseSender) MaxBatchSize() int {
	return firebaseMaxBatch
}

// classify maps an FCM error to a per-token verdict. Unregistered and
// malformed tokens never recover.
func classify(token string, err error) *service.TokenOutcome {
	result := service.PushRejectedTransient
	if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) || messaging.IsSenderIDMismatch(err) {
		result = service.PushRejectedPermanent
	}

	return &service.TokenOutcome{Token: token, Result: result, Err: err}
}

func notificationOf(message *service.PushMessage) *messaging.Notification {
	return &messaging.Notification{
		Title: message.Title,
		Body:  message.Body,
	}
}

func androidConfig() *messaging.AndroidConfig {
	return &messaging.AndroidConfig{Priority: "high"}
}
