// Package lifecycle holds shared start/stop budgets for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of servers, pools and clients.
const DefaultTimeout = 10 * time.Second
