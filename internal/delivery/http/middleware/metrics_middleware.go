package middleware

import (
	"strconv"
	"time"

	"sandy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Process measures the handler and records the outcome. The route pattern is
// used as the endpoint label so path parameters do not explode cardinality.
func (m *MetricsMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		endpoint := c.Path()
		if endpoint == "" {
			endpoint = c.Request().URL.Path
		}

		m.metrics.RecordHTTPRequest(
			endpoint,
			c.Request().Method,
			strconv.Itoa(c.Response().Status),
			time.Since(start).Seconds(),
		)

		return err
	}
}
