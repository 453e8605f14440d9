package impl

import (
	"context"
	"log/slog"
	"time"

	"vesselwatch/config"
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
	// maxChainDepth bounds ancestor walks so a corrupted chain cannot loop forever.
	maxChainDepth = 1000
	dailyRepeat   = 24 * time.Hour
)

type notificationStateMachine struct {
	logger           *slog.Logger
	retryCfg         config.RetryConfig
	coalescingWindow time.Duration
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	shipRepo         repository.ShipRepository
	typeRepo         repository.NotificationTypeRepository
	publisher        service.EventPublisher
}

// NewNotificationStateMachine creates the notification state machine
func NewNotificationStateMachine(
	logger *slog.Logger,
	cfg *config.Config,
	txManager repository.TransactionManager,
	notificationRepo repository.NotificationRepository,
	shipRepo repository.ShipRepository,
	typeRepo repository.NotificationTypeRepository,
	publisher service.EventPublisher,
) usecase.NotificationStateMachine {
	return &notificationStateMachine{
		logger:           logger,
		retryCfg:         cfg.Engine.Retry,
		coalescingWindow: cfg.Engine.Dedup.CoalescingWindow,
		txManager:        txManager,
		notificationRepo: notificationRepo,
		shipRepo:         shipRepo,
		typeRepo:         typeRepo,
		publisher:        publisher,
	}
}

func (m *notificationStateMachine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, m.logger)
}

// Raise creates a QUEUED notification for an event
func (m *notificationStateMachine) Raise(ctx context.Context, req *usecase.RaiseRequest) (*entity.Notification, error) {
	if req.Ship == nil || req.Type == nil {
		return nil, errors.Wrap(domainerrors.ErrNotificationCreationFailed, "ship and notification type are required")
	}

	now := time.Now()
	data := newMessageData(req.Ship, req.Type, req.BoundaryCode, req.Event, req.Latitude, req.Longitude, req.DistanceMeters, req.ObservedAt)
	title, body, err := renderMessage(req.Type, data)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidTemplate, err.Error())
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	notification := m.newNotification(id, req.Ship.ID, req.Type, now)
	notification.BoundaryCrossed = req.BoundaryCrossed
	notification.BoundaryNearWarning = req.BoundaryNearWarning
	if req.BoundaryCode != "" {
		notification.BoundaryStatusCode = req.BoundaryCode + ":" + string(req.Event)
	}
	notification.Title = title
	notification.FormattedMessage = body
	notification.Latitude = req.Latitude
	notification.Longitude = req.Longitude
	notification.DistanceMeters = req.DistanceMeters

	err = m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewNotificationRepository().Create(ctx, notification); err != nil {
			return err
		}

		return factory.NewShipRepository().UpdateLastNotification(ctx, req.Ship.ID, notification.ID)
	})
	if errors.Is(err, repository.ErrNotificationExists) {
		// a concurrent evaluation already created the pending raise
		return m.notificationRepo.FindByID(ctx, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	m.log(ctx).Info("[Geofence] Notification raised",
		slog.String("notification_id", notification.ID.String()),
		slog.String("ship_id", req.Ship.ID.String()),
		slog.String("boundary_status_code", notification.BoundaryStatusCode),
	)

	return notification, nil
}

func (m *notificationStateMachine) newNotification(id, shipID uuid.UUID, notificationType *entity.NotificationType, now time.Time) *entity.Notification {
	maxRetry := notificationType.MaxRetry
	if maxRetry <= 0 {
		maxRetry = m.retryCfg.DefaultMaxRetry
	}

	typeID := notificationType.ID

	return &entity.Notification{
		ID:                     id,
		ShipID:                 shipID,
		NotificationTypeID:     typeID,
		Status:                 entity.NotificationStatusQueued,
		RetryNumber:            0,
		MaxRetry:               maxRetry,
		Active:                 true,
		RepeatDaily:            notificationType.RepeatDaily,
		RepeatUntilResolved:    notificationType.RepeatUntilResolved,
		NextNotificationTypeID: notificationType.NextNotificationTypeID,
		Priority:               notificationType.Priority,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// SuppressIfDuplicate marks a notification DUPLICATE when an earlier open one covers the same event
func (m *notificationStateMachine) SuppressIfDuplicate(ctx context.Context, notification *entity.Notification, now time.Time) (bool, error) {
	if !dedupApplies(notification) {
		return false, nil
	}

	earlier, err := m.notificationRepo.FindEarlierOpen(ctx, notification, notification.CreatedAt.Add(-m.coalescingWindow))
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up duplicates")
	}

	ok, err := m.notificationRepo.Transition(ctx, &repository.StatusTransition{
		ID:          notification.ID,
		From:        entity.NotificationStatusQueued,
		To:          entity.NotificationStatusDuplicate,
		RetryNumber: notification.RetryNumber,
		At:          now,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to mark duplicate")
	}
	if !ok {
		return false, nil
	}

	m.log(ctx).Info("[Scheduler] Notification suppressed as duplicate",
		slog.String("notification_id", notification.ID.String()),
		slog.String("kept_notification_id", earlier.ID.String()),
	)
	m.publishStatus(ctx, notification, entity.NotificationStatusQueued, entity.NotificationStatusDuplicate, nil, now)
	notification.Status = entity.NotificationStatusDuplicate
	notification.NextRetry = nil
	notification.UpdatedAt = now

	return true, nil
}

// dedupApplies limits suppression to event-raised notifications that were never attempted.
// Chained follow-ups are spawned deliberately and are never storm products.
func dedupApplies(n *entity.Notification) bool {
	return n.Status == entity.NotificationStatusQueued &&
		n.BoundaryStatusCode != "" &&
		n.PreviousNotificationID == nil &&
		!n.HasBeenAttempted()
}

// Claim moves a due notification to SENDING
func (m *notificationStateMachine) Claim(ctx context.Context, notification *entity.Notification, claimToken string, now time.Time) (bool, error) {
	from := notification.Status
	if from != entity.NotificationStatusQueued && from != entity.NotificationStatusFailed {
		return false, errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot claim a %s notification", from)
	}
	if notification.IsTerminal() {
		return false, errors.Wrap(domainerrors.ErrNotificationTerminal, "cannot claim")
	}

	ok, err := m.notificationRepo.Claim(ctx, notification.ID, from, claimToken, now)
	if err != nil {
		return false, errors.Wrap(err, "failed to claim notification")
	}
	if !ok {
		return false, nil
	}

	notification.Status = entity.NotificationStatusSending
	notification.ClaimToken = claimToken
	notification.ClaimedAt = &now
	notification.UpdatedAt = now

	return true, nil
}

// nextAfterFailure decides where a failed attempt leaves the notification.
func nextAfterFailure(n *entity.Notification, deliveryErr *domainerrors.DeliveryError, retryCfg config.RetryConfig, now time.Time) *repository.StatusTransition {
	reason := deliveryErr.Reason()
	retry := n.RetryNumber + 1

	transition := &repository.StatusTransition{
		ID:          n.ID,
		From:        entity.NotificationStatusSending,
		ClaimToken:  n.ClaimToken,
		RetryNumber: retry,
		At:          now,
	}

	if deliveryErr.Permanent() {
		transition.To = entity.NotificationStatusFailed
		transition.Reason = &reason
		transition.RetryNumber = n.RetryNumber

		return transition
	}

	if retry > n.MaxRetry {
		transition.To = entity.NotificationStatusFailed
		transition.Reason = &reason

		return transition
	}

	next := now.Add(retryDelay(retryCfg.BaseDelay, retryCfg.MaxDelay, retry))
	transition.To = entity.NotificationStatusQueued
	transition.NextRetry = &next

	return transition
}

// RecordOutcome applies the result of a delivery attempt
func (m *notificationStateMachine) RecordOutcome(ctx context.Context, notification *entity.Notification, result *usecase.DispatchResult, now time.Time) (*entity.Notification, error) {
	if notification.Status != entity.NotificationStatusSending {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "outcome for a %s notification", notification.Status)
	}
	if result == nil {
		result = &usecase.DispatchResult{Err: domainerrors.ErrUnknown}
	}

	var transition *repository.StatusTransition
	if result.Succeeded() {
		transition = &repository.StatusTransition{
			ID:          notification.ID,
			From:        entity.NotificationStatusSending,
			ClaimToken:  notification.ClaimToken,
			To:          result.Status,
			RetryNumber: notification.RetryNumber,
			At:          now,
		}
	} else {
		deliveryErr := result.Err
		if deliveryErr == nil {
			deliveryErr = domainerrors.ErrUnknown
		}
		transition = nextAfterFailure(notification, deliveryErr, m.retryCfg, now)
	}

	m.saveAttempts(ctx, result.Attempts)

	ok, err := m.notificationRepo.Transition(ctx, transition)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record delivery outcome")
	}
	if !ok {
		// orphan recovery or a cancel got there first
		return nil, repository.ErrStaleTransition
	}

	applyTransition(notification, transition)
	m.publishStatus(ctx, notification, entity.NotificationStatusSending, transition.To, transition.Reason, now)

	logger := m.log(ctx).With(
		slog.String("notification_id", notification.ID.String()),
		slog.String("status", string(notification.Status)),
		slog.Int("retry_number", notification.RetryNumber),
	)
	if notification.Reason != nil {
		logger = logger.With(slog.String("reason", string(*notification.Reason)))
	}
	logger.Info("[Dispatcher] Delivery outcome recorded")

	if result.Succeeded() {
		m.spawnFollowUp(ctx, notification, now)
	}

	return notification, nil
}

func applyTransition(n *entity.Notification, t *repository.StatusTransition) {
	at := t.At
	if t.From == entity.NotificationStatusSending {
		n.LastAttemptAt = &at
	}
	n.Status = t.To
	n.Reason = t.Reason
	n.RetryNumber = t.RetryNumber
	n.NextRetry = t.NextRetry
	n.ClaimToken = ""
	n.ClaimedAt = nil
	n.UpdatedAt = at

	switch t.To {
	case entity.NotificationStatusSent:
		n.SentAt = &at
	case entity.NotificationStatusDelivered:
		n.SentAt = &at
		n.DeliveredAt = &at
	}
}

func (m *notificationStateMachine) saveAttempts(ctx context.Context, attempts []*entity.NotificationAttempt) {
	if len(attempts) == 0 {
		return
	}

	if err := m.notificationRepo.CreateAttempts(ctx, attempts); err != nil {
		m.log(ctx).Warn("[Dispatcher] Failed to save delivery attempts", slog.Any("error", err))
	}
}

func (m *notificationStateMachine) publishStatus(ctx context.Context, n *entity.Notification, from, to entity.NotificationStatus, reason *entity.FailureReason, at time.Time) {
	event := &service.NotificationStatusEvent{
		NotificationID: n.ID.String(),
		ShipID:         n.ShipID.String(),
		From:           string(from),
		To:             string(to),
		RetryNumber:    n.RetryNumber,
		OccurredAt:     at,
	}
	if reason != nil {
		event.Reason = string(*reason)
	}

	if err := m.publisher.PublishNotificationStatus(ctx, event); err != nil {
		m.log(ctx).Warn("[Dispatcher] Failed to publish status event",
			slog.String("notification_id", n.ID.String()),
			slog.Any("error", err),
		)
	}
}

// spawnFollowUp chains the next notification after a successful delivery.
// Failures are logged and never undo the delivery status.
func (m *notificationStateMachine) spawnFollowUp(ctx context.Context, origin *entity.Notification, now time.Time) {
	originType, err := m.typeRepo.FindByID(ctx, origin.NotificationTypeID)
	if err != nil {
		m.log(ctx).Warn("[Dispatcher] Cannot load notification type for chaining",
			slog.String("notification_id", origin.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	var (
		nextType  *entity.NotificationType
		nextRetry *time.Time
	)

	switch {
	case originType.HasNextAction():
		nextTypeID := origin.NextNotificationTypeID
		if nextTypeID == nil {
			nextTypeID = originType.NextNotificationTypeID
		}
		if nextTypeID == nil {
			m.log(ctx).Error("[Dispatcher] Chain skipped: next action set without a next notification type",
				slog.String("notification_id", origin.ID.String()),
				slog.String("notification_type", originType.Code),
			)

			return
		}
		nextType, err = m.typeRepo.FindByID(ctx, *nextTypeID)
		if err != nil {
			m.log(ctx).Error("[Dispatcher] Chain skipped: next notification type not found",
				slog.String("notification_id", origin.ID.String()),
				slog.String("next_notification_type_id", nextTypeID.String()),
				slog.Any("error", err),
			)

			return
		}
	case origin.RepeatDaily && origin.Active && origin.ResolvedAt == nil:
		nextType = originType
		at := now.Add(dailyRepeat)
		nextRetry = &at
	default:
		return
	}

	followUp, err := m.chain(ctx, origin, nextType, nextRetry, now)
	if err != nil {
		m.log(ctx).Error("[Dispatcher] Failed to chain follow-up notification",
			slog.String("notification_id", origin.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	m.log(ctx).Info("[Dispatcher] Follow-up notification chained",
		slog.String("notification_id", origin.ID.String()),
		slog.String("next_notification_id", followUp.ID.String()),
		slog.String("notification_type", nextType.Code),
	)
}

func (m *notificationStateMachine) chain(ctx context.Context, origin *entity.Notification, nextType *entity.NotificationType, nextRetry *time.Time, now time.Time) (*entity.Notification, error) {
	if origin.NextNotificationID != nil {
		return nil, domainerrors.ErrChainLinkExists
	}

	followUp := m.newNotification(uuid.New(), origin.ShipID, nextType, now)
	originID := origin.ID
	followUp.PreviousNotificationID = &originID
	followUp.NextRetry = nextRetry
	followUp.BoundaryStatusCode = origin.BoundaryStatusCode
	followUp.Latitude = origin.Latitude
	followUp.Longitude = origin.Longitude
	followUp.DistanceMeters = origin.DistanceMeters

	if err := m.validateChain(ctx, origin, followUp.ID); err != nil {
		return nil, err
	}

	ship, err := m.shipRepo.FindByID(ctx, origin.ShipID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ship for follow-up")
	}

	data := newMessageData(ship, nextType, boundaryFromStatusCode(origin.BoundaryStatusCode), eventFromNotification(origin),
		origin.Latitude, origin.Longitude, origin.DistanceMeters, now)
	followUp.Title, followUp.FormattedMessage, err = renderMessage(nextType, data)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidTemplate, err.Error())
	}

	err = m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		notificationRepo := factory.NewNotificationRepository()
		if err := notificationRepo.Create(ctx, followUp); err != nil {
			return err
		}

		linked, err := notificationRepo.LinkNext(ctx, origin.ID, followUp.ID)
		if err != nil {
			return err
		}
		if !linked {
			return domainerrors.ErrChainLinkExists
		}

		return factory.NewShipRepository().UpdateLastNotification(ctx, origin.ShipID, followUp.ID)
	})
	if err != nil {
		return nil, err
	}

	nextID := followUp.ID
	origin.NextNotificationID = &nextID

	return followUp, nil
}

// validateChain walks the ancestors of origin and rejects the link when the chain
// already loops or would reach candidateID.
func (m *notificationStateMachine) validateChain(ctx context.Context, origin *entity.Notification, candidateID uuid.UUID) error {
	seen := map[uuid.UUID]struct{}{origin.ID: {}}
	if origin.ID == candidateID {
		return domainerrors.ErrChainCycle
	}

	current := origin
	for depth := 0; current.PreviousNotificationID != nil; depth++ {
		if depth >= maxChainDepth {
			return errors.Wrap(domainerrors.ErrChainCycle, "chain too deep")
		}

		parentID := *current.PreviousNotificationID
		if parentID == candidateID {
			return domainerrors.ErrChainCycle
		}
		if _, ok := seen[parentID]; ok {
			return domainerrors.ErrChainCycle
		}
		seen[parentID] = struct{}{}

		parent, err := m.notificationRepo.FindByID(ctx, parentID)
		if err != nil {
			return errors.Wrap(err, "failed to walk notification chain")
		}
		if parent.NextNotificationID == nil || *parent.NextNotificationID != current.ID {
			return errors.Wrapf(domainerrors.ErrChainCycle, "broken back link at %s", parentID)
		}
		current = parent
	}

	return nil
}

// Cancel fails a non-terminal notification with UNKNOWN_ERROR
func (m *notificationStateMachine) Cancel(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := m.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.IsTerminal() {
		return nil, domainerrors.ErrNotificationTerminal
	}

	now := time.Now()
	reason := entity.FailureReasonUnknownError
	transition := &repository.StatusTransition{
		ID:          notification.ID,
		From:        notification.Status,
		ClaimToken:  notification.ClaimToken,
		To:          entity.NotificationStatusFailed,
		Reason:      &reason,
		RetryNumber: notification.RetryNumber,
		At:          now,
	}

	ok, err := m.notificationRepo.Transition(ctx, transition)
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel notification")
	}
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrConflict, "notification changed while cancelling")
	}

	from := notification.Status
	lastAttempt := notification.LastAttemptAt
	applyTransition(notification, transition)
	if from != entity.NotificationStatusSending {
		notification.LastAttemptAt = lastAttempt
	}
	m.publishStatus(ctx, notification, from, entity.NotificationStatusFailed, &reason, now)

	return notification, nil
}

// Resolve deactivates a notification
func (m *notificationStateMachine) Resolve(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := m.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.ResolvedAt != nil {
		return notification, nil
	}

	now := time.Now()
	if _, err := m.notificationRepo.Resolve(ctx, id, now); err != nil {
		return nil, errors.Wrap(err, "failed to resolve notification")
	}

	notification.Active = false
	notification.ResolvedAt = &now
	notification.UpdatedAt = now

	return notification, nil
}

func boundaryFromStatusCode(code string) string {
	for i := len(code) - 1; i >= 0; i-- {
		if code[i] == ':' {
			return code[:i]
		}
	}

	return code
}

func eventFromNotification(n *entity.Notification) entity.GeofenceEvent {
	switch {
	case n.BoundaryCrossed:
		return entity.GeofenceEventCrossed
	case n.BoundaryNearWarning:
		return entity.GeofenceEventNearWarning
	default:
		return entity.GeofenceEventNoChange
	}
}
