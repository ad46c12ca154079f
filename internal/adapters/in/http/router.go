package http

import (
	"log/slog"
	"net/http"

	"grubdash/internal/generated/servers"
	"grubdash/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with API routes, error rendering and
// the operational endpoints /health, /metrics, /openapi.json and /swagger/*.
func NewRouter(server *Server, logger *slog.Logger, m metrics.Factory) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger.With("component", "http"), m.Validation())

	e.Use(
		middleware.RequestID(),
		requestLogger(logger.With("component", "http")),
		middleware.Recover(),
		recordMetrics(m.HTTP()),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}
