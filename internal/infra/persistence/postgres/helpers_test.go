package postgres

import (
	"context"
	"testing"
	"time"

	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the shared-cache database alive for the whole test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

var testBase = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

func seedShip(t *testing.T, db *gorm.DB, mutate func(*model.ShipModel)) *model.ShipModel {
	t.Helper()

	ship := &model.ShipModel{
		ID:              uuid.New(),
		Code:            "VW-" + uuid.NewString()[:8],
		Name:            "Hai An",
		Status:          string(entity.ShipStatusConnected),
		TrackingEnabled: true,
	}
	if mutate != nil {
		mutate(ship)
	}
	require.NoError(t, db.Create(ship).Error)

	return ship
}

func newQueuedNotification(shipID uuid.UUID, createdAt time.Time) *entity.Notification {
	return &entity.Notification{
		ID:                 uuid.New(),
		ShipID:             shipID,
		NotificationTypeID: uuid.New(),
		Status:             entity.NotificationStatusQueued,
		MaxRetry:           3,
		BoundaryCrossed:    true,
		BoundaryStatusCode: "EEZ-NORTH:CROSSED",
		Active:             true,
		Priority:           5,
		Title:              "Boundary crossed",
		FormattedMessage:   "Hai An crossed EEZ-NORTH",
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
