package driven

import "github.com/custodia-labs/keyword-solver/internal/core/domain"

// StatusSink receives the updates of one search.
// It is implemented by the UI shell that started the search.
type StatusSink interface {
	// Progress is called once for every candidate that is not a word.
	Progress(p domain.Progress)

	// Complete is called exactly once with the terminal outcome.
	// No Progress call follows it.
	Complete(o domain.Outcome)
}
