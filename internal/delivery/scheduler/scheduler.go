// Package scheduler runs the engine's recurring jobs on cron schedules.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vesselwatch/config"
	"vesselwatch/internal/delivery"
	"vesselwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Retry    usecase.RetryScheduler
	Geofence usecase.GeofenceUsecase
	Tracking usecase.TrackingUsecase
}

type scheduler struct {
	cfg      *config.SchedulerConfig
	tracking *config.TrackingConfig
	logger   *slog.Logger
	cron     *cron.Cron
	retry    usecase.RetryScheduler
	geofence usecase.GeofenceUsecase
	trackers usecase.TrackingUsecase
	now      func() time.Time

	// ctx is handed to every job and cancelled on stop
	ctx    context.Context
	cancel context.CancelFunc
}

// New builds the scheduler delivery. Every job is wrapped so a slow run is skipped rather than stacked.
func New(params Params) (delivery.Delivery, error) {
	s := newScheduler(params)

	if err := s.register(); err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(params Params) *scheduler {
	logger := &cronLogger{logger: params.Logger}
	ctx, cancel := context.WithCancel(context.Background())

	return &scheduler{
		cfg:      &params.Cfg.Engine.Scheduler,
		tracking: &params.Cfg.Engine.Tracking,
		logger:   params.Logger,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		retry:    params.Retry,
		geofence: params.Geofence,
		trackers: params.Tracking,
		now:      func() time.Time { return time.Now().UTC() },
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *scheduler) register() error {
	jobs := []struct {
		name string
		spec string
		run  func()
	}{
		{name: "sweep", spec: s.cfg.SweepSpec, run: s.sweep},
		{name: "orphan_recovery", spec: s.cfg.RecoverySpec, run: s.recoverOrphans},
		{name: "boundary_refresh", spec: s.cfg.BoundaryRefreshSpec, run: s.refreshBoundaries},
	}

	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.spec, job.run); err != nil {
			return errors.Wrapf(err, "invalid cron spec %q for %s", job.spec, job.name)
		}
		s.logger.Info("[Scheduler] Job scheduled", slog.String("job", job.name), slog.String("spec", job.spec))
	}

	return nil
}

// Serve loads the boundaries, starts trackers when configured and then starts the cron loop.
func (s *scheduler) Serve(ctx context.Context) error {
	s.refreshBoundaries()

	if s.tracking.AutoStart {
		started, err := s.trackers.StartAll(s.ctx)
		if err != nil {
			s.logger.Error("[Scheduler] Failed to start trackers", slog.Any("error", err))
		} else {
			s.logger.Info("[Scheduler] Trackers started", slog.Int("count", started))
		}
	}

	s.cron.Start()
	s.logger.Info("[Scheduler] Started", slog.Int("jobs", len(s.cron.Entries())))

	return nil
}

func (s *scheduler) sweep() {
	report, err := s.retry.Sweep(s.ctx, s.now())
	if err != nil {
		s.logger.Error("[Scheduler] Sweep failed", slog.Any("error", err))

		return
	}

	if report.Due == 0 {
		return
	}

	s.logger.Info("[Scheduler] Sweep completed",
		slog.Int("due", report.Due),
		slog.Int("claimed", report.Claimed),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("requeued", report.Requeued),
		slog.Int("failed", report.Failed),
		slog.Int("duplicates", report.Duplicates),
		slog.Int("lost", report.Lost),
	)
}

func (s *scheduler) recoverOrphans() {
	recovered, err := s.retry.RecoverOrphans(s.ctx, s.now())
	if err != nil {
		s.logger.Error("[Scheduler] Orphan recovery failed", slog.Any("error", err))

		return
	}

	if recovered > 0 {
		s.logger.Warn("[Scheduler] Recovered orphaned claims", slog.Int64("count", recovered))
	}
}

func (s *scheduler) refreshBoundaries() {
	if err := s.geofence.ReloadBoundaries(s.ctx); err != nil {
		s.logger.Error("[Scheduler] Boundary refresh failed", slog.Any("error", err))
	}
}

// stop cancels running jobs, waits for them and then stops every tracker.
func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("[Scheduler] Stopping")

	s.cancel()
	done := s.cron.Stop()
	s.trackers.StopAll()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler jobs did not finish")
	}
}
