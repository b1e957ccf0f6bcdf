// Package delivery defines the contract every transport front end fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the composition root.
type Delivery interface {
	// Serve blocks until the listener stops or fails.
	Serve(ctx context.Context) error
}
