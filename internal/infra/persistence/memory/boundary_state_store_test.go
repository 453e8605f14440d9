package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"vesselwatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryStateStore_CompareAndSwap(t *testing.T) {
	store := NewBoundaryStateStore()
	ctx := context.Background()
	shipID := uuid.New()

	empty, err := store.Load(ctx, shipID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Version)

	stale := &entity.ShipBoundaryState{ShipID: shipID, Version: 4, Boundaries: map[string]*entity.BoundaryState{}}
	ok, err := store.CompareAndSwap(ctx, stale)
	require.NoError(t, err)
	assert.False(t, ok, "nothing stored yet, only version 0 may write")

	first := empty.Clone()
	first.Boundaries["EEZ-NORTH"] = &entity.BoundaryState{BoundaryCode: "EEZ-NORTH", Side: 1}
	ok, err = store.CompareAndSwap(ctx, first)
	require.NoError(t, err)
	assert.True(t, ok)

	// the caller's copy is not aliased by the store
	first.Boundaries["EEZ-NORTH"].Side = -1
	stored, err := store.Load(ctx, shipID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	assert.Equal(t, 1, stored.Boundaries["EEZ-NORTH"].Side)

	ok, err = store.CompareAndSwap(ctx, first)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, shipID))
	gone, err := store.Load(ctx, shipID)
	require.NoError(t, err)
	assert.Empty(t, gone.Boundaries)
}

func TestBoundaryStateStore_ConcurrentWritersOneWins(t *testing.T) {
	store := NewBoundaryStateStore()
	ctx := context.Background()
	shipID := uuid.New()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.CompareAndSwap(ctx, entity.NewShipBoundaryState(shipID))
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
