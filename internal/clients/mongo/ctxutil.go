package mongo

import (
	"context"
	"time"
)

// OpTimeout bounds every repository call.
const OpTimeout = 5 * time.Second

// WithRepoTimeout wraps ctx in a d timeout unless ctx is already done or
// already expires within d, in which case ctx is returned as is with a
// no-op cancel. The cancel is always safe to defer.
func WithRepoTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx.Err() != nil {
		return ctx, func() {}
	}
	if dl, ok := ctx.Deadline(); ok && time.Until(dl) <= d {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
