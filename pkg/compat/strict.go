package compat

import (
	"fmt"
	"sync/atomic"
)

// strictMode gates assertion-style checks. It is meant to be set once
// at startup (on in development/test builds, off in production) and
// never alters the verdict logic itself.
var strictMode atomic.Bool

// SetStrictMode enables or disables strict validation checks.
func SetStrictMode(on bool) {
	strictMode.Store(on)
}

// StrictMode reports whether strict validation checks are enabled.
func StrictMode() bool {
	return strictMode.Load()
}

// verifyf panics with a formatted message when cond is false. Used only
// under strict mode for conditions that indicate a bug in the calling
// code rather than a peer-compatibility failure.
func verifyf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
