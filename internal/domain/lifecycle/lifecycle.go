// Package lifecycle holds process lifecycle constants shared by entrypoints and deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown of a component.
const DefaultTimeout = 10 * time.Second
