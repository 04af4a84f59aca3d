// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (DB ping, server shutdown).
const DefaultTimeout = 10 * time.Second
