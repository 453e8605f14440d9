package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's internal logging through slog.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = (*cronLogger)(nil)

// Info is used by cron for schedule chatter, so it is logged at debug.
func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Scheduler] "+msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Scheduler] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
