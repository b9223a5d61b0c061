package router

import (
	"net/http"

	"simples/internal/simples/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Options struct {
	Logger  *zap.Logger
	Metrics handler.RequestObserver
	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler
}

// New builds the echo instance with middleware, error handling and routes.
func New(h *handler.SystemHandler, opts Options) *echo.Echo {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)

	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(handler.RequestIDMiddleware)
	e.Use(handler.RequestLogger(logger))
	if opts.Metrics != nil {
		e.Use(handler.MetricsMiddleware(opts.Metrics))
	}
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered", zap.Error(err), zap.ByteString("stack", stack))
			return err
		},
	}))

	RegisterRoutes(e, h, opts.MetricsHandler)
	return e
}

func RegisterRoutes(e *echo.Echo, h *handler.SystemHandler, metricsHandler http.Handler) {
	// Health Check
	e.GET("/health", handler.HealthCheck)

	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}

	e.GET("/simples/system/:mapId/:systemId", h.GetSystem)

	// Everything else falls through to echo's not-found handling, which the
	// error handler renders as the "Endpoint not found" body.
}
