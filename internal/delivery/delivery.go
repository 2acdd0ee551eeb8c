// Package delivery defines the transport-agnostic server contract.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runtime. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
