// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds database pings on start and HTTP shutdown on stop.
const DefaultTimeout = 10 * time.Second
