// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as the initial
// database ping and HTTP server drain.
const DefaultTimeout = 30 * time.Second
