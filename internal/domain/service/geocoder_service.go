// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import (
	"context"

	"sandy/internal/errors"

	"github.com/paulmach/orb"
)

// Geocoding errors. Callers decide on retry policy; none is applied here.
var (
	// ErrAddressNotFound is returned when the upstream lookup has no candidates.
	ErrAddressNotFound = errors.New("address not found")

	// ErrGeocoderUnavailable is returned on network, timeout or upstream errors.
	ErrGeocoderUnavailable = errors.New("geocoding service unavailable")
)

// GeocoderService defines the interface for free-form address resolution.
type GeocoderService interface {
	// Resolve converts a free-form address into a coordinate point.
	// Every call goes out over the network; results are not cached.
	Resolve(ctx context.Context, address string) (orb.Point, error)
}
