package cli

import (
	"bytes"
	"context"
	"sync"

	"github.com/custodia-labs/keyword-solver/internal/adapters/driven/clock"
	"github.com/custodia-labs/keyword-solver/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/services"
)

// stubOracle answers from a fixed word list; verdict overrides every lookup
// when set.
type stubOracle struct {
	mu      sync.Mutex
	words   map[string]bool
	verdict *domain.Verdict
	calls   []string
}

func (s *stubOracle) Validate(_ context.Context, candidate string) domain.Verdict {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, candidate)

	if s.verdict != nil {
		return *s.verdict
	}
	if s.words[candidate] {
		return domain.Valid()
	}
	return domain.NotFound()
}

// setupTestServices wires real services around oracle with no pacing and an
// in-memory config store. The returned func restores the package state.
func setupTestServices(oracle *stubOracle) func() {
	if oracle == nil {
		oracle = &stubOracle{}
	}

	solver := services.NewSolver(oracle, clock.NewPacer(), 0)
	SetServices(&Services{
		Search:   services.NewSearchService(solver),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})

	return func() {
		SetServices(nil)
		SetBootstrap(nil)
		solveJSON = false
		countList = false
		countLimit = 50
		configDir = ""
		verbose = false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}

// execute runs the root command with args and returns the combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
