package main

import (
	"context"
	"log/slog"
	"os"

	"vesselwatch/config"
	"vesselwatch/internal/delivery"
	"vesselwatch/internal/delivery/scheduler"
	"vesselwatch/internal/delivery/worker"
	"vesselwatch/internal/delivery/worker/handler"
	"vesselwatch/internal/infra/gps"
	logs "vesselwatch/internal/infra/log"
	"vesselwatch/internal/infra/notification"
	"vesselwatch/internal/infra/persistence/postgres"
	"vesselwatch/internal/infra/persistence/redis"
	"vesselwatch/internal/infra/persistence/statestore"
	"vesselwatch/internal/infra/pubsub"
	"vesselwatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			redis.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewNotificationRepository,
			postgres.NewNotificationTypeRepository,
			postgres.NewBorderPointRepository,
			postgres.NewShipRepository,
			postgres.NewUserRepository,
			postgres.NewPushTokenRepository,
			statestore.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewPushSender,
			gps.NewHTTPSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationStateMachine,
			impl.NewPushDispatcher,
			impl.NewRetryScheduler,
			impl.NewGeofenceService,
			impl.NewTrackingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewTrackingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start delivery", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
