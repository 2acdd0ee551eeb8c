package impl

import (
	"io"
	"log/slog"

	"sandy/config"
	"sandy/internal/infra/metrics"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Discovery: &config.DiscoveryConfig{
			MaxPhotos:         3,
			MaxRecentBookings: 5,
			MaxReviews:        5,
		},
	}
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New()
}
