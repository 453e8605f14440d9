package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/domain/service"
	"vesselwatch/internal/errors"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type pushDispatcher struct {
	logger    *slog.Logger
	shipRepo  repository.ShipRepository
	userRepo  repository.UserRepository
	tokenRepo repository.PushTokenRepository
	sender    service.PushSender
	publisher service.EventPublisher
}

// NewPushDispatcher creates a new push dispatcher instance
func NewPushDispatcher(
	logger *slog.Logger,
	shipRepo repository.ShipRepository,
	userRepo repository.UserRepository,
	tokenRepo repository.PushTokenRepository,
	sender service.PushSender,
	publisher service.EventPublisher,
) usecase.PushDispatcher {
	return &pushDispatcher{
		logger:    logger,
		shipRepo:  shipRepo,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		sender:    sender,
		publisher: publisher,
	}
}

// batchTally accumulates per-token outcomes over all batches.
type batchTally struct {
	delivered  int
	accepted   int
	permanent  int
	transient  int
	batchErr   *domainerrors.DeliveryError
	invalid    []string
	attempts   []*entity.NotificationAttempt
	tokenCount int
}

// Dispatch resolves the owner's devices and sends the notification to all of them
func (d *pushDispatcher) Dispatch(ctx context.Context, notification *entity.Notification) *usecase.DispatchResult {
	logger := deliverycontext.LoggerFrom(ctx, d.logger).With(
		slog.String("notification_id", notification.ID.String()),
	)

	userID, deliveryErr := d.resolveOwner(ctx, notification.ShipID)
	if deliveryErr != nil {
		logger.Info("[Dispatcher] Owner not resolvable", slog.Any("error", deliveryErr))

		return &usecase.DispatchResult{Err: deliveryErr}
	}

	tokens, err := d.tokenRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return &usecase.DispatchResult{Err: domainerrors.ClassifyDeliveryError(err)}
	}
	if len(tokens) == 0 {
		return &usecase.DispatchResult{Err: domainerrors.ErrNoDeviceFound}
	}

	message := &service.PushMessage{
		Title: notification.Title,
		Body:  notification.FormattedMessage,
		Data: map[string]string{
			"notification_id":      notification.ID.String(),
			"ship_id":              notification.ShipID.String(),
			"notification_type_id": notification.NotificationTypeID.String(),
			"boundary_status_code": notification.BoundaryStatusCode,
		},
	}

	tally := d.sendAll(ctx, notification, tokenValues(tokens), message)
	d.reportInvalidTokens(ctx, logger, userID, notification.ID, tally.invalid)

	result := &usecase.DispatchResult{Attempts: tally.attempts, InvalidTokens: tally.invalid}
	switch {
	case tally.delivered > 0:
		result.Status = entity.NotificationStatusDelivered
	case tally.accepted > 0:
		result.Status = entity.NotificationStatusSent
	case tally.permanent == tally.tokenCount:
		result.Err = domainerrors.ErrNoDeviceFound
	case tally.batchErr != nil:
		result.Err = tally.batchErr
	default:
		result.Err = domainerrors.ErrProvider
	}

	logger.Debug("[Dispatcher] Dispatch finished",
		slog.Int("tokens", tally.tokenCount),
		slog.Int("delivered", tally.delivered),
		slog.Int("accepted", tally.accepted),
		slog.Int("rejected_permanent", tally.permanent),
		slog.Int("rejected_transient", tally.transient),
	)

	return result
}

func (d *pushDispatcher) resolveOwner(ctx context.Context, shipID uuid.UUID) (uuid.UUID, *domainerrors.DeliveryError) {
	ship, err := d.shipRepo.FindByID(ctx, shipID)
	if errors.Is(err, repository.ErrShipNotFound) {
		return uuid.Nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return uuid.Nil, domainerrors.ClassifyDeliveryError(err)
	}
	if ship.OwnerUserID == nil {
		return uuid.Nil, domainerrors.ErrUserNotFound
	}

	user, err := d.userRepo.FindByID(ctx, *ship.OwnerUserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return uuid.Nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return uuid.Nil, domainerrors.ClassifyDeliveryError(err)
	}

	return user.ID, nil
}

func tokenValues(tokens []*entity.UserPushToken) []string {
	seen := make(map[string]struct{}, len(tokens))
	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token.Token == "" {
			continue
		}
		if _, ok := seen[token.Token]; ok {
			continue
		}
		seen[token.Token] = struct{}{}
		values = append(values, token.Token)
	}

	return values
}

func (d *pushDispatcher) sendAll(ctx context.Context, notification *entity.Notification, tokens []string, message *service.PushMessage) *batchTally {
	batchSize := firebaseBatchSize
	if size := d.sender.MaxBatchSize(); size > 0 && size < batchSize {
		batchSize = size
	}

	tally := &batchTally{tokenCount: len(tokens)}
	attemptNumber := notification.RetryNumber + 1

	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		outcomes, err := d.sender.SendBatch(ctx, batch, message)
		if err != nil {
			classified := domainerrors.ClassifyDeliveryError(err)
			tally.batchErr = classified
			tally.transient += len(batch)
			for _, token := range batch {
				tally.attempts = append(tally.attempts, newAttempt(notification.ID, attemptNumber, token, service.PushRejectedTransient, classified))
			}

			continue
		}

		for _, outcome := range outcomes {
			switch outcome.Result {
			case service.PushDelivered:
				tally.delivered++
			case service.PushAccepted:
				tally.accepted++
			case service.PushRejectedPermanent:
				tally.permanent++
				tally.invalid = append(tally.invalid, outcome.Token)
			default:
				tally.transient++
				if outcome.Err != nil && tally.batchErr == nil {
					tally.batchErr = domainerrors.ClassifyDeliveryError(outcome.Err)
				}
			}
			tally.attempts = append(tally.attempts, newAttempt(notification.ID, attemptNumber, outcome.Token, outcome.Result, outcome.Err))
		}
	}

	return tally
}

func newAttempt(notificationID uuid.UUID, attemptNumber int, token string, result service.PushResult, err error) *entity.NotificationAttempt {
	attempt := &entity.NotificationAttempt{
		ID:             uuid.New(),
		NotificationID: notificationID,
		AttemptNumber:  attemptNumber,
		Token:          token,
		Outcome:        string(result),
		CreatedAt:      time.Now(),
	}
	if err != nil {
		attempt.Error = err.Error()
	}

	return attempt
}

// reportInvalidTokens signals dead tokens upstream; the token store is not touched here.
func (d *pushDispatcher) reportInvalidTokens(ctx context.Context, logger *slog.Logger, userID, notificationID uuid.UUID, tokens []string) {
	for _, token := range tokens {
		event := &service.TokenInvalidatedEvent{
			UserID:         userID.String(),
			Token:          token,
			NotificationID: notificationID.String(),
		}
		if err := d.publisher.PublishTokenInvalidated(ctx, event); err != nil {
			logger.Warn("[Dispatcher] Failed to report invalid token",
				slog.String("token_prefix", token[:min(10, len(token))]),
				slog.Any("error", err),
			)
		}
	}
}
