// Package api serves the PrintHub HTTP API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"printhub/config"
	"printhub/internal/delivery"
	apimiddleware "printhub/internal/delivery/api/middleware"
	"printhub/internal/delivery/api/router"
	"printhub/internal/delivery/api/validator"
	"printhub/internal/delivery/middleware"
	"printhub/internal/domain/lifecycle"
	"printhub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	addr   string
	h2     *http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	// Request ID must run before the access log so every line carries it.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
			ExposeHeaders: []string{echo.HeaderLocation, echo.HeaderXRequestID},
		}),
	)
	if httpCfg.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port)),
		h2:     &http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout},
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

// Serve blocks until the server stops. A graceful shutdown is not an error.
func (s *apiServer) Serve(_ context.Context) error {
	s.logger.Info("PrintHub API listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("PrintHub API shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
