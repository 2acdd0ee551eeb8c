// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sandy/internal/delivery/http/middleware"
	"sandy/internal/delivery/http/router/handler"
	"sandy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SitterHandler       *handler.SitterHandler
	AvailabilityHandler *handler.AvailabilityHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	MetricsMiddleware   *middleware.MetricsMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	sitterHandler       *handler.SitterHandler
	availabilityHandler *handler.AvailabilityHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sitterHandler:       params.SitterHandler,
		availabilityHandler: params.AvailabilityHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		metricsMiddleware:   params.MetricsMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.metricsMiddleware.Process)

	// Health check and exposition endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metrics.Handler())

	// Discovery endpoint; the profile body shape is fixed by the mobile client
	e.GET("/sitter", r.sitterHandler.DiscoverSitter)

	// Weekly availability endpoints
	e.POST("/availability", r.availabilityHandler.ReplaceAvailability)
	e.GET("/availability", r.availabilityHandler.GetAvailability)
}
