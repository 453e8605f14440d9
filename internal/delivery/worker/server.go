package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"vesselwatch/config"
	"vesselwatch/internal/delivery"
	"vesselwatch/internal/delivery/api"
	apihandler "vesselwatch/internal/delivery/api/router/handler"
	"vesselwatch/internal/delivery/worker/handler"
	"vesselwatch/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workerServer is the engine's HTTP surface: Pub/Sub push ingestion and tracking control.
type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	PushHandler     *handler.PushHandler
	TrackingHandler *handler.TrackingHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := api.NewEcho(params.Cfg, params.Logger, "engine")

	e.GET("/health", apihandler.HealthCheck)

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	ships := e.Group("/api/v1/ships")
	ships.GET("/tracking", params.TrackingHandler.List)
	ships.POST("/:id/tracking", params.TrackingHandler.Control)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Engine.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
