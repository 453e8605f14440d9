package postgres

import (
	"context"
	"testing"
	"time"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryStateStore_CompareAndSwap(t *testing.T) {
	db := newTestDB(t)
	store := NewBoundaryStateStore(db)
	ctx := context.Background()
	shipID := uuid.New()

	empty, err := store.Load(ctx, shipID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Version)
	assert.Empty(t, empty.Boundaries)

	openID := uuid.New()
	first := empty.Clone()
	first.Boundaries["EEZ-NORTH"] = &entity.BoundaryState{
		ShipID:             shipID,
		BoundaryCode:       "EEZ-NORTH",
		Side:               1,
		DistanceMeters:     30,
		Zone:               entity.BoundaryZoneCrossed,
		OpenNotificationID: &openID,
		LastSampleAt:       testBase,
	}

	ok, err := store.CompareAndSwap(ctx, first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CompareAndSwap(ctx, empty.Clone())
	require.NoError(t, err)
	assert.False(t, ok, "a second first-write loses")

	stored, err := store.Load(ctx, shipID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	require.Contains(t, stored.Boundaries, "EEZ-NORTH")
	assert.Equal(t, entity.BoundaryZoneCrossed, stored.Boundaries["EEZ-NORTH"].Zone)
	assert.Equal(t, openID, *stored.Boundaries["EEZ-NORTH"].OpenNotificationID)
	assert.True(t, testBase.Equal(stored.Boundaries["EEZ-NORTH"].LastSampleAt))

	next := stored.Clone()
	next.Boundaries["EEZ-NORTH"].LastSampleAt = testBase.Add(time.Minute)
	ok, err = store.CompareAndSwap(ctx, next)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CompareAndSwap(ctx, stored)
	require.NoError(t, err)
	assert.False(t, ok, "stale version is rejected")

	require.NoError(t, store.Delete(ctx, shipID))
	gone, err := store.Load(ctx, shipID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gone.Version)
}
