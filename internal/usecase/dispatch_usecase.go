package usecase

import (
	"context"
	"time"

	"vesselwatch/internal/domain/entity"
)

// PushDispatcher fans a claimed notification out to its ship owner's devices.
type PushDispatcher interface {
	Dispatch(ctx context.Context, notification *entity.Notification) *DispatchResult
}

// SweepReport summarises one scheduler sweep.
type SweepReport struct {
	Due        int
	Claimed    int
	Succeeded  int
	Requeued   int
	Failed     int
	Duplicates int
	Lost       int
}

// RetryScheduler drives due notifications through delivery attempts.
type RetryScheduler interface {
	// Sweep claims and dispatches the notifications due at now.
	Sweep(ctx context.Context, now time.Time) (*SweepReport, error)

	// RecoverOrphans returns stranded SENDING notifications to QUEUED.
	RecoverOrphans(ctx context.Context, now time.Time) (int64, error)
}
