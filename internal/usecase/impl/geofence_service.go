package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"vesselwatch/config"
	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/border"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/errors"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type geofenceService struct {
	logger           *slog.Logger
	cfg              config.GeofenceConfig
	borderRepo       repository.BorderPointRepository
	shipRepo         repository.ShipRepository
	typeRepo         repository.NotificationTypeRepository
	notificationRepo repository.NotificationRepository
	stateStore       repository.BoundaryStateStore
	stateMachine     usecase.NotificationStateMachine

	model atomic.Pointer[border.Model]
}

// NewGeofenceService creates the geofence evaluator
func NewGeofenceService(
	logger *slog.Logger,
	cfg *config.Config,
	borderRepo repository.BorderPointRepository,
	shipRepo repository.ShipRepository,
	typeRepo repository.NotificationTypeRepository,
	notificationRepo repository.NotificationRepository,
	stateStore repository.BoundaryStateStore,
	stateMachine usecase.NotificationStateMachine,
) usecase.GeofenceUsecase {
	return &geofenceService{
		logger:           logger,
		cfg:              cfg.Engine.Geofence,
		borderRepo:       borderRepo,
		shipRepo:         shipRepo,
		typeRepo:         typeRepo,
		notificationRepo: notificationRepo,
		stateStore:       stateStore,
		stateMachine:     stateMachine,
	}
}

// ReloadBoundaries rebuilds the border model from the store
func (s *geofenceService) ReloadBoundaries(ctx context.Context) error {
	points, err := s.borderRepo.List(ctx, "")
	if err != nil {
		return errors.Wrap(err, "failed to load border points")
	}

	model := border.New(points)
	s.model.Store(model)

	defined := 0
	for _, b := range model.Boundaries() {
		if b.Defined() {
			defined++
		} else {
			s.logger.Warn("[Geofence] Boundary has too few points and is skipped", slog.String("boundary_code", b.Code))
		}
	}
	s.logger.Info("[Geofence] Boundaries loaded",
		slog.Int("points", len(points)),
		slog.Int("boundaries", len(model.Boundaries())),
		slog.Int("defined", defined),
	)

	return nil
}

func (s *geofenceService) currentModel(ctx context.Context) (*border.Model, error) {
	if model := s.model.Load(); model != nil {
		return model, nil
	}
	if err := s.ReloadBoundaries(ctx); err != nil {
		return nil, err
	}

	return s.model.Load(), nil
}

// pendingRaise is a notification decided during evaluation and created after the state is stored.
type pendingRaise struct {
	boundary string
	pending  entity.PendingRaise
	nType    *entity.NotificationType
}

// Evaluate classifies a sample, stores the new boundary state and applies the side effects
func (s *geofenceService) Evaluate(ctx context.Context, sample *entity.PositionSample) (*entity.GeofenceResult, error) {
	logger := deliverycontext.LoggerFrom(ctx, s.logger).With(slog.String("ship_id", sample.ShipID.String()))

	if !sample.IsValid() {
		return nil, domainerrors.ErrInvalidPosition
	}

	ship, err := s.shipRepo.FindByID(ctx, sample.ShipID)
	if errors.Is(err, repository.ErrShipNotFound) {
		return nil, domainerrors.ErrShipNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ship")
	}
	if !ship.IsEvaluable() {
		return nil, domainerrors.ErrShipInactive
	}

	model, err := s.currentModel(ctx)
	if err != nil {
		return nil, err
	}

	result, raises, resolves, err := s.evaluateWithCAS(ctx, model, sample)
	if err != nil {
		return nil, err
	}

	s.declarePosition(ctx, logger, ship)

	var sideEffectErrs []error
	for _, id := range resolves {
		if _, err := s.stateMachine.Resolve(ctx, id); err != nil {
			logger.Error("[Geofence] Failed to resolve notification", slog.String("notification_id", id.String()), slog.Any("error", err))
			sideEffectErrs = append(sideEffectErrs, err)
		}
	}

	raiseFailed := false
	for _, raise := range raises {
		pending := raise.pending
		_, err := s.stateMachine.Raise(ctx, &usecase.RaiseRequest{
			ID:                  pending.NotificationID,
			Ship:                ship,
			Type:                raise.nType,
			BoundaryCode:        raise.boundary,
			Event:               pending.Event,
			BoundaryCrossed:     pending.Event == entity.GeofenceEventCrossed,
			BoundaryNearWarning: pending.Event == entity.GeofenceEventNearWarning,
			Latitude:            &pending.Latitude,
			Longitude:           &pending.Longitude,
			DistanceMeters:      &pending.DistanceMeters,
			ObservedAt:          pending.ObservedAt,
		})
		if err != nil {
			// the pending raise stays in the stored state and is retried by the next evaluation
			logger.Error("[Geofence] Failed to raise notification",
				slog.String("boundary_code", raise.boundary),
				slog.String("event", string(pending.Event)),
				slog.String("notification_id", pending.NotificationID.String()),
				slog.Any("error", err),
			)
			sideEffectErrs = append(sideEffectErrs, err)
			raiseFailed = true
		}
	}

	if result.Event != entity.GeofenceEventNoChange {
		logger.Info("[Geofence] Boundary event detected", slog.String("event", string(result.Event)))
	}

	if raiseFailed {
		sideEffectErrs = append(sideEffectErrs, domainerrors.ErrNotificationCreationFailed)
	}
	if len(sideEffectErrs) > 0 {
		return result, errors.Join(sideEffectErrs...)
	}

	return result, nil
}

func (s *geofenceService) evaluateWithCAS(ctx context.Context, model *border.Model, sample *entity.PositionSample) (*entity.GeofenceResult, []pendingRaise, []uuid.UUID, error) {
	attempts := max(s.cfg.MaxCASAttempts, 1)
	position := orb.Point{sample.Longitude, sample.Latitude}

	for attempt := 1; attempt <= attempts; attempt++ {
		stored, err := s.stateStore.Load(ctx, sample.ShipID)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to load boundary state")
		}

		result := &entity.GeofenceResult{ShipID: sample.ShipID, Event: entity.GeofenceEventNoChange, Skipped: true}
		next := stored.Clone()
		changed := false
		var raises []pendingRaise
		var resolves []uuid.UUID

		for _, b := range model.Boundaries() {
			meas, ok := b.DistanceToBoundary(position)
			if !ok {
				continue
			}
			result.Skipped = false

			prior := stored.Boundaries[b.Code]
			alert, unraised, err := s.loadAlert(ctx, prior)
			if err != nil {
				return nil, nil, nil, err
			}

			decision := evaluateBoundary(prior, meas, sample.ObservedAt, s.cfg.WarningThresholdMeters, alert)
			outcome := entity.BoundaryOutcome{BoundaryCode: b.Code, Event: decision.Event, DistanceMeters: meas.DistanceMeters}

			if decision.Next != nil {
				if !unraised {
					decision.Next.Pending = nil
				}
				decision.Next.ShipID = sample.ShipID
				next.Boundaries[b.Code] = decision.Next
				changed = true
			}

			switch decision.Event {
			case entity.GeofenceEventCrossed, entity.GeofenceEventNearWarning:
				raise, err := s.prepareRaise(ctx, b.Code, entity.PendingRaise{
					NotificationID: uuid.New(),
					Event:          decision.Event,
					DistanceMeters: meas.DistanceMeters,
					Latitude:       sample.Latitude,
					Longitude:      sample.Longitude,
					ObservedAt:     sample.ObservedAt,
				})
				if err != nil {
					return nil, nil, nil, err
				}
				id := raise.pending.NotificationID
				pending := raise.pending
				decision.Next.OpenNotificationID = &id
				decision.Next.Pending = &pending
				outcome.NotificationID = &id
				raises = append(raises, raise)
			case entity.GeofenceEventCleared:
				outcome.NotificationID = decision.ResolveID
				resolves = append(resolves, *decision.ResolveID)
			default:
				if unraised && (decision.Next == nil || decision.Next.AwaitsNotification()) {
					raise, err := s.prepareRaise(ctx, b.Code, *prior.Pending)
					if err != nil {
						return nil, nil, nil, err
					}
					id := raise.pending.NotificationID
					outcome.NotificationID = &id
					raises = append(raises, raise)
				}
			}

			if decision.Event.Rank() > result.Event.Rank() {
				result.Event = decision.Event
			}
			result.Outcomes = append(result.Outcomes, outcome)
		}

		if !changed {
			return result, raises, nil, nil
		}

		swapped, err := s.stateStore.CompareAndSwap(ctx, next)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to store boundary state")
		}
		if swapped {
			return result, raises, resolves, nil
		}

		s.logger.Debug("[Geofence] Boundary state changed concurrently, re-evaluating",
			slog.String("ship_id", sample.ShipID.String()),
			slog.Int("attempt", attempt),
		)
	}

	return nil, nil, nil, errors.Wrap(domainerrors.ErrConflict, "boundary state kept changing")
}

// loadAlert resolves the notification linked from prior. When the link points at a pending raise
// whose notification was never created, it reports unraised and describes the alert from the pending data.
func (s *geofenceService) loadAlert(ctx context.Context, prior *entity.BoundaryState) (*openAlert, bool, error) {
	if prior == nil || prior.OpenNotificationID == nil {
		return nil, false, nil
	}

	notification, err := s.notificationRepo.FindByID(ctx, *prior.OpenNotificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		if !prior.AwaitsNotification() {
			return nil, false, nil
		}

		return &openAlert{
			ID:          prior.Pending.NotificationID,
			Open:        true,
			NearWarning: prior.Pending.Event == entity.GeofenceEventNearWarning,
			Crossed:     prior.Pending.Event == entity.GeofenceEventCrossed,
		}, true, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load linked notification")
	}

	return newOpenAlert(notification), false, nil
}

// prepareRaise resolves the notification type for an event. Failing here aborts the evaluation
// before any state is stored, so the sample can be redelivered.
func (s *geofenceService) prepareRaise(ctx context.Context, boundaryCode string, pending entity.PendingRaise) (pendingRaise, error) {
	code := s.cfg.NearWarningTypeCode
	if pending.Event == entity.GeofenceEventCrossed {
		code = s.cfg.CrossedTypeCode
	}

	notificationType, err := s.typeRepo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Error("[Geofence] Notification type unavailable",
			slog.String("notification_type", code),
			slog.String("boundary_code", boundaryCode),
			slog.Any("error", err),
		)

		return pendingRaise{}, errors.Wrapf(err, "failed to load notification type %s", code)
	}

	return pendingRaise{boundary: boundaryCode, pending: pending, nType: notificationType}, nil
}

// declarePosition moves a ship that just reported a valid position out of the connection states.
func (s *geofenceService) declarePosition(ctx context.Context, logger *slog.Logger, ship *entity.Ship) {
	if ship.Status != entity.ShipStatusDisconnected && ship.Status != entity.ShipStatusConnected {
		return
	}

	if err := s.shipRepo.UpdateStatus(ctx, ship.ID, entity.ShipStatusPositionDeclared); err != nil {
		logger.Warn("[Geofence] Failed to update ship status", slog.Any("error", err))

		return
	}
	ship.Status = entity.ShipStatusPositionDeclared
}
