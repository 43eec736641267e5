// Package delivery defines the contract every transport implementation
// satisfies, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a server that accepts external traffic.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
