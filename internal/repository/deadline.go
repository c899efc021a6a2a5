package repository

import (
	"context"
	"time"
)

// withDeadline caps a store call at the configured per-call timeout. A zero
// or negative timeout leaves the caller's context untouched.
func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
