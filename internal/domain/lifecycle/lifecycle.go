// Package lifecycle holds shared constants for application start/stop behavior.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of every component.
const DefaultTimeout = 10 * time.Second
