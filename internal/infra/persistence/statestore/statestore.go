// Package statestore selects the boundary state backend from configuration.
package statestore

import (
	"log/slog"

	"vesselwatch/config"
	"vesselwatch/internal/domain/constants"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/infra/persistence/memory"
	"vesselwatch/internal/infra/persistence/postgres"
	"vesselwatch/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies of the state store, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Redis  *goredis.Client `optional:"true"`
}

// New returns the boundary state store named by engine.geofence.stateStore.
func New(params Params) (repository.BoundaryStateStore, error) {
	backend := constants.StateStorePostgres
	if params.Config.Engine != nil && params.Config.Engine.Geofence.StateStore != "" {
		backend = params.Config.Engine.Geofence.StateStore
	}

	params.Logger.Info("Boundary state store selected", slog.String("backend", backend))

	switch backend {
	case constants.StateStorePostgres:
		return postgres.NewBoundaryStateStore(params.DB), nil
	case constants.StateStoreMemory:
		return memory.NewBoundaryStateStore(), nil
	case constants.StateStoreRedis:
		if params.Redis == nil {
			return nil, errors.New("redis state store selected but redis is not configured")
		}
		prefix := ""
		if params.Config.Redis != nil {
			prefix = params.Config.Redis.KeyPrefix
		}

		return redis.NewBoundaryStateStore(params.Redis, prefix), nil
	default:
		return nil, errors.Errorf("unknown boundary state store: %s", backend)
	}
}
