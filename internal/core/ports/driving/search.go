package driving

import (
	"context"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
)

// Solver runs one keyword search to completion on the caller's goroutine.
type Solver interface {
	// Solve enumerates the candidates of sets, validates them one at a time
	// and returns the terminal outcome. The same outcome is delivered to
	// sink.Complete exactly once. Cancelling ctx ends the search with
	// OutcomeCancelled.
	Solve(ctx context.Context, sets domain.LetterSets, sink driven.StatusSink) domain.Outcome
}

// SearchService starts and controls background keyword searches.
// At most one search is active at a time; starting a new one cancels the
// previous search.
type SearchService interface {
	// Start normalises raw and begins a search in the background.
	// Updates are delivered to sink. The search is also cancelled when ctx is done.
	Start(ctx context.Context, raw [domain.KeywordLength]string, sink driven.StatusSink) (domain.SearchHandle, error)

	// Cancel requests cancellation of a search. Cancelling a finished
	// search, or cancelling twice, is a no-op.
	Cancel(handle domain.SearchHandle) error

	// Wait blocks until the search has a terminal outcome or ctx is done.
	Wait(ctx context.Context, handle domain.SearchHandle) (domain.Outcome, error)

	// Status returns the latest status of a search.
	Status(handle domain.SearchHandle) (*SearchStatus, error)
}

// SearchStatus represents the latest known state of a search.
type SearchStatus struct {
	// Handle identifies the search.
	Handle domain.SearchHandle

	// Sets are the normalised letter sets being searched.
	Sets domain.LetterSets

	// Running indicates the search has not reached a terminal outcome.
	Running bool

	// Attempts is the number of candidates rejected so far.
	Attempts int

	// Total is the number of candidates in the search.
	Total uint64

	// LastCandidate is the most recently rejected candidate.
	LastCandidate string

	// Outcome is the terminal outcome, nil while running.
	Outcome *domain.Outcome
}
