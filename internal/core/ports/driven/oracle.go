package driven

import (
	"context"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

// WordOracle validates candidate keywords against a dictionary.
// Backed by the dictionaryapi.dev HTTP service.
type WordOracle interface {
	// Validate checks whether candidate is a word. It issues at most one
	// lookup and never retries. Every failure, including cancellation of
	// ctx, is reported as a verdict rather than an error.
	Validate(ctx context.Context, candidate string) domain.Verdict
}
