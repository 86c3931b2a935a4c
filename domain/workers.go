package domain

import "context"

// Worker is a long running background loop stopped by ctx.
type Worker interface {
	Start(ctx context.Context)
}
