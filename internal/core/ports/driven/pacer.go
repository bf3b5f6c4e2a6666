package driven

import (
	"context"
	"time"
)

// Pacer waits between consecutive oracle calls.
// Tests substitute a fake so pacing is observable without wall-clock delays.
type Pacer interface {
	// Wait blocks for d or until ctx is done, whichever comes first.
	// It returns ctx.Err() if the wait was interrupted.
	Wait(ctx context.Context, d time.Duration) error
}
