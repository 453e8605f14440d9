package main

import (
	"context"
	"log/slog"
	"os"

	"vesselwatch/config"
	"vesselwatch/internal/delivery"
	"vesselwatch/internal/delivery/api"
	apimiddleware "vesselwatch/internal/delivery/api/middleware"
	"vesselwatch/internal/delivery/api/router/handler"
	"vesselwatch/internal/infra/auth"
	"vesselwatch/internal/infra/boundary"
	logs "vesselwatch/internal/infra/log"
	"vesselwatch/internal/infra/persistence/postgres"
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
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			boundary.NewGeoJSONLoader,
			auth.NewTokenVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationStateMachine,
			impl.NewNotificationService,
			impl.NewNotificationTypeService,
			impl.NewBorderService,
			impl.NewPositionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPositionHandler,
			handler.NewNotificationHandler,
			handler.NewBorderHandler,
			handler.NewNotificationTypeHandler,
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
