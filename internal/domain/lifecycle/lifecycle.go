// Package lifecycle holds shared timing constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 15 * time.Second
