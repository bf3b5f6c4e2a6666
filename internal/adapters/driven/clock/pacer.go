// Package clock provides the wall-clock pacer used between oracle calls.
package clock

import (
	"context"
	"time"

	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
)

// Ensure Pacer implements the interface.
var _ driven.Pacer = Pacer{}

// Pacer waits on a real timer.
type Pacer struct{}

// NewPacer creates a wall-clock pacer.
func NewPacer() Pacer {
	return Pacer{}
}

// Wait blocks for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when the wait was interrupted.
func (Pacer) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
