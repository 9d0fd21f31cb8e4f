// Package delivery defines the contract shared by the process's inbound servers.
package delivery

import "context"

// Delivery is an inbound server started by the application lifecycle.
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
