package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"vesselwatch/config"
	"vesselwatch/internal/delivery"
	apimiddleware "vesselwatch/internal/delivery/api/middleware"
	"vesselwatch/internal/delivery/api/router"
	"vesselwatch/internal/delivery/api/validator"
	"vesselwatch/internal/delivery/middleware"
	"vesselwatch/internal/domain/lifecycle"
	"vesselwatch/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// apiServer is the operator and ingestion HTTP API.
type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Cfg, params.Logger, "api")
	echoServer.Use(echomiddleware.CORS())

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the echo instance every vesselwatch HTTP surface shares:
// timeouts from config, panic recovery, request ids, access logging, a body limit,
// the JSON error envelope and request validation. component tags the request loggers.
func NewEcho(cfg *config.Config, logger *slog.Logger, component string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())

	// Request ID before logger so every log line carries it
	e.Use(middleware.NewRequestIDMiddleware(logger, component).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg, "/health").Handle)
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server",
		slog.String("host_port", hostPort),
		slog.Int("routes", len(s.server.Routes())),
	)

	// h2c lets the load balancer speak HTTP/2 to the container without TLS
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
