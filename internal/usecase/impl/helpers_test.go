package impl

import (
	"io"
	"log/slog"
	"time"

	"vesselwatch/config"
	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Engine: &config.EngineConfig{
			Geofence: config.GeofenceConfig{
				WarningThresholdMeters: 1000,
				NearWarningTypeCode:    "boundary_near_warning",
				CrossedTypeCode:        "boundary_crossed",
				MaxCASAttempts:         3,
			},
			Retry: config.RetryConfig{
				BaseDelay:       30 * time.Second,
				MaxDelay:        time.Hour,
				DefaultMaxRetry: 3,
			},
			Scheduler: config.SchedulerConfig{
				BatchSize:             100,
				Workers:               4,
				AttemptTimeout:        time.Second,
				ClaimLivenessDeadline: 2 * time.Minute,
			},
			Dedup:    config.DedupConfig{CoalescingWindow: 10 * time.Minute},
			Tracking: config.TrackingConfig{PollInterval: 10 * time.Millisecond, SourceTimeout: time.Second},
		},
		BorderImport: &config.BorderImportConfig{AllowedSchemes: []string{"file", "mem"}},
	}
}

func newTestShip() *entity.Ship {
	owner := uuid.New()

	return &entity.Ship{
		ID:          uuid.New(),
		Code:        "TW-1024",
		Name:        "Ocean Star",
		OwnerUserID: &owner,
		Status:      entity.ShipStatusActive,
	}
}

func newTestNotificationType(code string) *entity.NotificationType {
	return &entity.NotificationType{
		ID:            uuid.New(),
		Code:          code,
		Name:          "Boundary alert",
		Priority:      5,
		TitleTemplate: "{{.TypeName}}",
		BodyTemplate:  "{{.ShipName}} {{.EventText}} {{.Boundary}}",
		MaxRetry:      3,
	}
}

func newSendingNotification(typeID uuid.UUID) *entity.Notification {
	claimedAt := time.Now().Add(-time.Second)

	return &entity.Notification{
		ID:                 uuid.New(),
		ShipID:             uuid.New(),
		NotificationTypeID: typeID,
		Status:             entity.NotificationStatusSending,
		MaxRetry:           3,
		Active:             true,
		BoundaryStatusCode: "EEZ-NORTH:CROSSED",
		BoundaryCrossed:    true,
		ClaimToken:         "claim-1",
		ClaimedAt:          &claimedAt,
		CreatedAt:          time.Now().Add(-time.Minute),
	}
}
