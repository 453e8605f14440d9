package impl

import (
	"context"
	"log/slog"
	"time"

	"vesselwatch/config"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/domain/service"
	"vesselwatch/internal/errors"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// tracker is one running poll task. done is closed when its goroutine exits.
type tracker struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type trackingService struct {
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
	source   service.PositionSource
	shipRepo repository.ShipRepository
	geofence usecase.GeofenceUsecase

	trackers *xsync.MapOf[uuid.UUID, *tracker]
}

// NewTrackingService creates the per-ship polling supervisor. source may be nil when no
// GPS provider is configured, in which case Start reports the feature as unavailable.
func NewTrackingService(
	logger *slog.Logger,
	cfg *config.Config,
	source service.PositionSource,
	shipRepo repository.ShipRepository,
	geofence usecase.GeofenceUsecase,
) usecase.TrackingUsecase {
	return &trackingService{
		logger:   logger,
		interval: cfg.Engine.Tracking.PollInterval,
		timeout:  cfg.Engine.Tracking.SourceTimeout,
		source:   source,
		shipRepo: shipRepo,
		geofence: geofence,
		trackers: xsync.NewMapOf[uuid.UUID, *tracker](),
	}
}

// Start begins polling a ship
func (s *trackingService) Start(ctx context.Context, shipID uuid.UUID) error {
	if s.source == nil {
		return domainerrors.ErrTrackingUnavailable
	}

	ship, err := s.shipRepo.FindByID(ctx, shipID)
	if errors.Is(err, repository.ErrShipNotFound) {
		return domainerrors.ErrShipNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load ship")
	}
	if !ship.IsEvaluable() {
		return domainerrors.ErrShipInactive
	}

	_, loaded := s.trackers.LoadOrCompute(shipID, func() *tracker {
		return s.spawn(ship)
	})
	if !loaded {
		s.logger.Info("[Tracking] Tracker started", slog.String("ship_id", shipID.String()))
	}

	return nil
}

func (s *trackingService) spawn(ship *entity.Ship) *tracker {
	// trackers outlive the request that started them
	ctx, cancel := context.WithCancel(context.Background())
	t := &tracker{cancel: cancel, done: make(chan struct{})}

	go s.run(ctx, t, ship)

	return t
}

func (s *trackingService) run(ctx context.Context, t *tracker, ship *entity.Ship) {
	defer close(t.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if !s.poll(ctx, ship) {
			s.forget(ship.ID, t)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// poll fetches and evaluates one position. It returns false when the ship can no longer be tracked.
func (s *trackingService) poll(ctx context.Context, ship *entity.Ship) bool {
	logger := s.logger.With(slog.String("ship_id", ship.ID.String()))

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	sample, err := s.source.Fetch(fetchCtx, ship)
	cancel()
	if err != nil {
		if errors.IsPermanent(err) {
			logger.Warn("[Tracking] Position source rejected ship, stopping tracker", slog.Any("error", err))

			return false
		}
		if ctx.Err() == nil {
			logger.Warn("[Tracking] Position fetch failed", slog.Any("error", err))
		}

		return true
	}

	sample.ShipID = ship.ID
	_, err = s.geofence.Evaluate(ctx, sample)
	switch {
	case errors.Is(err, domainerrors.ErrShipInactive), errors.Is(err, domainerrors.ErrShipNotFound):
		logger.Info("[Tracking] Ship deregistered, stopping tracker")

		return false
	case err != nil:
		logger.Warn("[Tracking] Evaluation failed", slog.Any("error", err))
	}

	return true
}

// forget removes t from the registry unless it was already replaced.
func (s *trackingService) forget(shipID uuid.UUID, t *tracker) {
	s.trackers.Compute(shipID, func(current *tracker, loaded bool) (*tracker, bool) {
		return current, loaded && current == t
	})
	t.cancel()
}

// Stop cancels a ship's tracker and waits for it to exit
func (s *trackingService) Stop(shipID uuid.UUID) bool {
	t, ok := s.trackers.LoadAndDelete(shipID)
	if !ok {
		return false
	}

	t.cancel()
	<-t.done
	s.logger.Info("[Tracking] Tracker stopped", slog.String("ship_id", shipID.String()))

	return true
}

// StartAll starts every tracking-enabled ship
func (s *trackingService) StartAll(ctx context.Context) (int, error) {
	if s.source == nil {
		return 0, domainerrors.ErrTrackingUnavailable
	}

	ships, err := s.shipRepo.FindTracked(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list tracked ships")
	}

	started := 0
	for _, ship := range ships {
		if !ship.IsEvaluable() {
			continue
		}
		_, loaded := s.trackers.LoadOrCompute(ship.ID, func() *tracker {
			return s.spawn(ship)
		})
		if !loaded {
			started++
		}
	}

	s.logger.Info("[Tracking] Trackers started", slog.Int("count", started))

	return started, nil
}

// StopAll cancels every tracker
func (s *trackingService) StopAll() {
	for _, id := range s.Running() {
		s.Stop(id)
	}
}

// Running lists the tracked ships
func (s *trackingService) Running() []uuid.UUID {
	ids := make([]uuid.UUID, 0, s.trackers.Size())
	s.trackers.Range(func(id uuid.UUID, _ *tracker) bool {
		ids = append(ids, id)

		return true
	})

	return ids
}
