// Package delivery defines the contract shared by all inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound transport, started by the application
// container and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
