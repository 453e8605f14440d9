package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vesselwatch/config"
	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/errors"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type retryScheduler struct {
	logger           *slog.Logger
	cfg              config.SchedulerConfig
	notificationRepo repository.NotificationRepository
	stateMachine     usecase.NotificationStateMachine
	dispatcher       usecase.PushDispatcher
}

// NewRetryScheduler creates the sweep that drives due notifications through delivery
func NewRetryScheduler(
	logger *slog.Logger,
	cfg *config.Config,
	notificationRepo repository.NotificationRepository,
	stateMachine usecase.NotificationStateMachine,
	dispatcher usecase.PushDispatcher,
) usecase.RetryScheduler {
	return &retryScheduler{
		logger:           logger,
		cfg:              cfg.Engine.Scheduler,
		notificationRepo: notificationRepo,
		stateMachine:     stateMachine,
		dispatcher:       dispatcher,
	}
}

type sweepOutcome int

const (
	outcomeSkipped sweepOutcome = iota
	outcomeDuplicate
	outcomeLost
	outcomeSucceeded
	outcomeRequeued
	outcomeFailed
)

// Sweep claims and dispatches every notification due at now
func (s *retryScheduler) Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	due, err := s.notificationRepo.FindDue(ctx, now, s.cfg.BatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find due notifications")
	}

	report := &usecase.SweepReport{Due: len(due)}
	if len(due) == 0 {
		return report, nil
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(s.cfg.Workers, 1))

	// due is already ordered by priority, so workers pick up the most urgent first
	for _, notification := range due {
		group.Go(func() error {
			outcome := s.process(groupCtx, notification, now)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeDuplicate:
				report.Duplicates++
			case outcomeLost:
				report.Lost++
			case outcomeSucceeded:
				report.Claimed++
				report.Succeeded++
			case outcomeRequeued:
				report.Claimed++
				report.Requeued++
			case outcomeFailed:
				report.Claimed++
				report.Failed++
			}

			return nil
		})
	}
	_ = group.Wait()

	return report, nil
}

func (s *retryScheduler) process(ctx context.Context, notification *entity.Notification, now time.Time) sweepOutcome {
	logger := deliverycontext.LoggerFrom(ctx, s.logger).With(
		slog.String("notification_id", notification.ID.String()),
	)

	suppressed, err := s.stateMachine.SuppressIfDuplicate(ctx, notification, now)
	if err != nil {
		logger.Warn("[Scheduler] Duplicate check failed", slog.Any("error", err))

		return outcomeSkipped
	}
	if suppressed {
		return outcomeDuplicate
	}

	// orphan recovery judges liveness by claimed_at, so it is the claim time rather than the sweep time
	claimed, err := s.stateMachine.Claim(ctx, notification, uuid.NewString(), time.Now())
	if err != nil {
		logger.Warn("[Scheduler] Claim failed", slog.Any("error", err))

		return outcomeSkipped
	}
	if !claimed {
		logger.Debug("[Scheduler] Notification claimed by another worker")

		return outcomeLost
	}

	result := s.attempt(ctx, notification)

	updated, err := s.stateMachine.RecordOutcome(ctx, notification, result, time.Now())
	if err != nil {
		// the claim stays SENDING and orphan recovery will pick it up
		logger.Warn("[Scheduler] Failed to record outcome", slog.Any("error", err))

		return outcomeLost
	}

	switch {
	case result.Succeeded():
		return outcomeSucceeded
	case updated.Status == entity.NotificationStatusQueued:
		return outcomeRequeued
	default:
		return outcomeFailed
	}
}

// attempt runs one dispatch under the attempt timeout. A timeout is a transient network failure.
func (s *retryScheduler) attempt(ctx context.Context, notification *entity.Notification) *usecase.DispatchResult {
	attemptCtx := ctx
	if s.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		defer cancel()
	}

	result := s.dispatcher.Dispatch(attemptCtx, notification)
	if result == nil {
		result = &usecase.DispatchResult{Err: domainerrors.ErrUnknown}
	}

	timedOut := errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
	if timedOut && !result.Succeeded() && (result.Err == nil || !result.Err.Permanent()) {
		result.Err = domainerrors.NewDeliveryError(entity.FailureReasonNetworkError, attemptCtx.Err())
	}

	return result
}

// RecoverOrphans resets SENDING notifications whose claim is older than the liveness deadline
func (s *retryScheduler) RecoverOrphans(ctx context.Context, now time.Time) (int64, error) {
	recovered, err := s.notificationRepo.RecoverOrphans(ctx, now.Add(-s.cfg.ClaimLivenessDeadline), now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to recover orphaned claims")
	}

	if recovered > 0 {
		deliverycontext.LoggerFrom(ctx, s.logger).Warn("[Scheduler] Recovered orphaned claims",
			slog.Int64("count", recovered),
		)
	}

	return recovered, nil
}
