package services

import (
	"context"
	"time"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driving"
	"github.com/custodia-labs/keyword-solver/internal/logger"
)

// Ensure Solver implements the interface.
var _ driving.Solver = (*Solver)(nil)

// searchState is a state of the per-search state machine.
type searchState int

const (
	stateIdle searchState = iota
	stateValidating
	statePaced
	stateTerminal
)

func (s searchState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateValidating:
		return "validating"
	case statePaced:
		return "paced"
	case stateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Solver is the search controller. It walks the candidates of a puzzle in
// odometer order, asks the oracle about each one and stops at the first
// word, the first hard failure, or cancellation.
type Solver struct {
	oracle driven.WordOracle
	pacer  driven.Pacer
	pacing time.Duration
}

// NewSolver creates a new search controller.
// pacing is the delay taken between consecutive oracle calls.
func NewSolver(oracle driven.WordOracle, pacer driven.Pacer, pacing time.Duration) *Solver {
	return &Solver{
		oracle: oracle,
		pacer:  pacer,
		pacing: pacing,
	}
}

// Solve runs one search to completion and reports its outcome to sink.
func (s *Solver) Solve(ctx context.Context, sets domain.LetterSets, sink driven.StatusSink) domain.Outcome {
	if sink == nil {
		sink = discardSink{}
	}

	logger.Section("Keyword Search")
	logger.Debug("Letter sets: %v", sets)

	outcome := s.run(ctx, sets, sink)

	switch outcome.Kind {
	case domain.OutcomeFound, domain.OutcomeExhausted:
		logger.Info("Search finished: %s after %d attempts", outcome.Kind, outcome.Attempts)
	default:
		logger.Warn("Search aborted: %s after %d attempts (%s)", outcome.Kind, outcome.Attempts, outcome.Message())
	}

	sink.Complete(outcome)
	return outcome
}

func (s *Solver) run(ctx context.Context, sets domain.LetterSets, sink driven.StatusSink) domain.Outcome {
	odometer, err := domain.NewOdometer(sets)
	if err != nil {
		logger.Warn("Rejecting search: %v", err)
		return domain.Outcome{Kind: domain.OutcomeInvalidInput}
	}

	total := sets.Combinations()
	logger.Debug("Candidates: %d, pacing: %s", total, s.pacing)

	var (
		state     = stateIdle
		candidate string
		attempts  int
		outcome   domain.Outcome
	)

	terminate := func(o domain.Outcome) {
		logger.Debug("State %s -> %s (%s)", state, stateTerminal, o.Kind)
		outcome = o
		state = stateTerminal
	}

	for state != stateTerminal {
		switch state {
		case stateIdle:
			// A validated odometer always yields at least one candidate.
			candidate, _ = odometer.Next()
			state = stateValidating

		case stateValidating:
			if ctx.Err() != nil {
				terminate(domain.Outcome{Kind: domain.OutcomeCancelled})
				continue
			}

			attempts++
			verdict := s.oracle.Validate(ctx, candidate)
			logger.Debug("Attempt %d: %s -> %s", attempts, candidate, verdict.Kind)

			// Cancellation wins over whatever the call returned.
			if ctx.Err() != nil {
				terminate(domain.Outcome{Kind: domain.OutcomeCancelled})
				continue
			}

			if result, done := domain.OutcomeFromVerdict(candidate, verdict); done {
				terminate(result)
				continue
			}

			sink.Progress(domain.Progress{Candidate: candidate, Attempt: attempts, Total: total})

			// The enumerator decides exhaustion, so the last candidate is
			// not followed by a pacing delay.
			next, ok := odometer.Next()
			if !ok {
				terminate(domain.Outcome{Kind: domain.OutcomeExhausted})
				continue
			}
			candidate = next
			state = statePaced

		case statePaced:
			if err := s.pacer.Wait(ctx, s.pacing); err != nil {
				logger.Debug("Pacing interrupted: %v", err)
				terminate(domain.Outcome{Kind: domain.OutcomeCancelled})
				continue
			}
			state = stateValidating
		}
	}

	outcome.Attempts = attempts
	return outcome
}

// discardSink drops all updates.
type discardSink struct{}

func (discardSink) Progress(domain.Progress) {}

func (discardSink) Complete(domain.Outcome) {}
