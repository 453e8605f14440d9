package redis

import (
	"context"
	"encoding/json"

	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

var errVersionMismatch = errors.New("boundary state version mismatch")

// storedState is the JSON document kept under each ship key.
type storedState struct {
	Version    int64                            `json:"version"`
	Boundaries map[string]*entity.BoundaryState `json:"boundaries"`
}

// boundaryStateStore keeps one JSON document per ship and swaps it with WATCH/MULTI.
type boundaryStateStore struct {
	client    goredis.UniversalClient
	keyPrefix string
}

// NewBoundaryStateStore creates a Redis-backed boundary state store.
func NewBoundaryStateStore(client goredis.UniversalClient, keyPrefix string) repository.BoundaryStateStore {
	return &boundaryStateStore{client: client, keyPrefix: keyPrefix}
}

func (s *boundaryStateStore) key(shipID uuid.UUID) string {
	if s.keyPrefix == "" {
		return "boundary_state:" + shipID.String()
	}

	return s.keyPrefix + ":boundary_state:" + shipID.String()
}

// Load returns the stored state, or an empty state at version 0.
func (s *boundaryStateStore) Load(ctx context.Context, shipID uuid.UUID) (*entity.ShipBoundaryState, error) {
	stored, err := s.read(ctx, s.client, shipID)
	if err != nil {
		return nil, err
	}

	state := entity.NewShipBoundaryState(shipID)
	state.Version = stored.Version
	for code, b := range stored.Boundaries {
		state.Boundaries[code] = b
	}

	return state, nil
}

func (s *boundaryStateStore) read(ctx context.Context, cmd goredis.Cmdable, shipID uuid.UUID) (*storedState, error) {
	raw, err := cmd.Get(ctx, s.key(shipID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return &storedState{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read boundary state")
	}

	var stored storedState
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode boundary state")
	}

	return &stored, nil
}

// CompareAndSwap writes state if the stored version still equals state.Version.
// A concurrent write between WATCH and EXEC aborts the transaction.
func (s *boundaryStateStore) CompareAndSwap(ctx context.Context, state *entity.ShipBoundaryState) (bool, error) {
	payload, err := json.Marshal(&storedState{Version: state.Version + 1, Boundaries: state.Boundaries})
	if err != nil {
		return false, errors.Wrap(err, "failed to encode boundary state")
	}

	key := s.key(state.ShipID)
	err = s.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := s.read(ctx, tx, state.ShipID)
		if err != nil {
			return err
		}
		if current.Version != state.Version {
			return errVersionMismatch
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)

			return nil
		})

		return err
	}, key)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errVersionMismatch), errors.Is(err, goredis.TxFailedErr):
		return false, nil
	default:
		return false, errors.Wrap(err, "failed to swap boundary state")
	}
}

// Delete forgets everything about a ship.
func (s *boundaryStateStore) Delete(ctx context.Context, shipID uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(shipID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete boundary state")
	}

	return nil
}
