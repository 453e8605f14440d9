package notification

import (
	"context"
	"log/slog"

	"vesselwatch/internal/domain/service"
)

// logSender accepts every message and writes it to the log
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(_ context.Context, token string, message *service.PushMessage) (*service.TokenOutcome, error) {
	s.logger.Info("Push message",
		slog.String("token", token),
		slog.String("title", message.Title),
		slog.String("body", message.Body),
	)

	return &service.TokenOutcome{Token: token, Result: service.PushAccepted}, nil
}

func (s *logSender) SendBatch(ctx context.Context, tokens []string, message *service.PushMessage) ([]*service.TokenOutcome, error) {
	outcomes := make([]*service.TokenOutcome, 0, len(tokens))
	for _, token := range tokens {
		outcome, _ := s.Send(ctx, token, message)
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (s *logSender) MaxBatchSize() int {
	return firebaseMaxBatch
}
