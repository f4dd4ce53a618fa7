// Package delivery defines the contract every transport (HTTP, workers)
// fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the transport
// stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
