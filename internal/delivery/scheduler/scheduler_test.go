package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vesselwatch/config"
	usecasemocks "vesselwatch/internal/mocks/usecase"
	"vesselwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fixture struct {
	cfg      *config.Config
	retry    *usecasemocks.MockRetryScheduler
	geofence *usecasemocks.MockGeofenceUsecase
	tracking *usecasemocks.MockTrackingUsecase
}

func newFixture(t *testing.T) *fixture {
	cfg := &config.Config{Engine: &config.EngineConfig{}}
	cfg.Engine.Scheduler = config.SchedulerConfig{
		SweepSpec:           "*/10 * * * * *",
		RecoverySpec:        "0 * * * * *",
		BoundaryRefreshSpec: "0 */5 * * * *",
	}

	return &fixture{
		cfg:      cfg,
		retry:    usecasemocks.NewMockRetryScheduler(t),
		geofence: usecasemocks.NewMockGeofenceUsecase(t),
		tracking: usecasemocks.NewMockTrackingUsecase(t),
	}
}

func (f *fixture) params(lc *fxtest.Lifecycle) Params {
	return Params{
		Lc:       lc,
		Cfg:      f.cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Retry:    f.retry,
		Geofence: f.geofence,
		Tracking: f.tracking,
	}
}

func TestNew_RejectsInvalidSpec(t *testing.T) {
	f := newFixture(t)
	f.cfg.Engine.Scheduler.RecoverySpec = "every minute"

	_, err := New(f.params(fxtest.NewLifecycle(t)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "orphan_recovery")
}

func TestSweep_UsesInjectedClock(t *testing.T) {
	f := newFixture(t)
	s := newScheduler(f.params(fxtest.NewLifecycle(t)))
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	f.retry.EXPECT().Sweep(mock.Anything, now).Return(&usecase.SweepReport{Due: 2, Claimed: 2, Succeeded: 1, Requeued: 1}, nil).Once()
	f.retry.EXPECT().Sweep(mock.Anything, now).Return(nil, errors.New("db down")).Once()

	s.sweep()
	s.sweep()
}

func TestRecoverOrphans(t *testing.T) {
	f := newFixture(t)
	s := newScheduler(f.params(fxtest.NewLifecycle(t)))

	f.retry.EXPECT().RecoverOrphans(mock.Anything, mock.Anything).Return(int64(3), nil)

	s.recoverOrphans()
}

func TestServe_LoadsBoundariesAndStartsTrackers(t *testing.T) {
	f := newFixture(t)
	f.cfg.Engine.Tracking.AutoStart = true
	lc := fxtest.NewLifecycle(t)

	f.geofence.EXPECT().ReloadBoundaries(mock.Anything).Return(nil)
	f.tracking.EXPECT().StartAll(mock.Anything).Return(2, nil)
	f.tracking.EXPECT().StopAll().Return()

	d, err := New(f.params(lc))
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, d.Serve(context.Background()))
	lc.RequireStop()

	s := d.(*scheduler)
	assert.ErrorIs(t, s.ctx.Err(), context.Canceled)
}

func TestServe_TrackersNotStartedByDefault(t *testing.T) {
	f := newFixture(t)
	lc := fxtest.NewLifecycle(t)

	f.geofence.EXPECT().ReloadBoundaries(mock.Anything).Return(errors.New("no boundaries"))
	f.tracking.EXPECT().StopAll().Return()

	d, err := New(f.params(lc))
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, d.Serve(context.Background()))
	lc.RequireStop()
}
