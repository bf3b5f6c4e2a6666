package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driving"
	"github.com/custodia-labs/keyword-solver/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// retainedSearches is how many finished searches stay queryable by handle.
const retainedSearches = 16

// SearchService runs keyword searches in the background, one at a time.
type SearchService struct {
	solver driving.Solver

	// startMu serialises Start. It is held while a superseded search winds
	// down, so sinks may call back into the service from Complete.
	startMu sync.Mutex

	mu      sync.Mutex
	current *searchRun
	runs    map[domain.SearchHandle]*searchRun
	order   []domain.SearchHandle
}

// NewSearchService creates a new search service around a solver.
func NewSearchService(solver driving.Solver) *SearchService {
	return &SearchService{
		solver: solver,
		runs:   make(map[domain.SearchHandle]*searchRun),
	}
}

// Start normalises raw and begins a search in the background.
// An active search is cancelled, and has delivered its outcome, before the
// new one starts.
func (s *SearchService) Start(
	ctx context.Context, raw [domain.KeywordLength]string, sink driven.StatusSink,
) (domain.SearchHandle, error) {
	if s.solver == nil {
		return "", errors.New("solver not configured")
	}
	if sink == nil {
		sink = discardSink{}
	}

	sets := domain.NormalizeAll(raw)

	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		logger.Debug("Superseding search %s", prev.handle)
		prev.cancel()
		<-prev.done
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := &searchRun{
		handle: domain.SearchHandle(uuid.NewString()),
		cancel: cancel,
		done:   make(chan struct{}),
		sink:   sink,
	}
	run.status = driving.SearchStatus{
		Handle:  run.handle,
		Sets:    sets,
		Running: true,
		Total:   sets.Combinations(),
	}

	s.mu.Lock()
	s.current = run
	s.retain(run)
	s.mu.Unlock()

	logger.Info("Starting search %s over %d candidates", run.handle, run.status.Total)

	go func() {
		defer close(run.done)
		defer cancel()
		s.solver.Solve(runCtx, sets, run)
	}()

	return run.handle, nil
}

// Cancel requests cancellation of a search.
func (s *SearchService) Cancel(handle domain.SearchHandle) error {
	run, err := s.lookup(handle)
	if err != nil {
		return err
	}
	logger.Debug("Cancelling search %s", handle)
	run.cancel()
	return nil
}

// Wait blocks until the search has a terminal outcome or ctx is done.
func (s *SearchService) Wait(ctx context.Context, handle domain.SearchHandle) (domain.Outcome, error) {
	run, err := s.lookup(handle)
	if err != nil {
		return domain.Outcome{}, err
	}

	select {
	case <-ctx.Done():
		return domain.Outcome{}, ctx.Err()
	case <-run.done:
	}

	status := run.snapshot()
	if status.Outcome == nil {
		return domain.Outcome{}, fmt.Errorf("search %s ended without an outcome", handle)
	}
	return *status.Outcome, nil
}

// Status returns the latest status of a search.
func (s *SearchService) Status(handle domain.SearchHandle) (*driving.SearchStatus, error) {
	run, err := s.lookup(handle)
	if err != nil {
		return nil, err
	}
	status := run.snapshot()
	return &status, nil
}

func (s *SearchService) lookup(handle domain.SearchHandle) (*searchRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[handle]
	if !ok {
		return nil, fmt.Errorf("search %s: %w", handle, domain.ErrNotFound)
	}
	return run, nil
}

// retain records run and evicts the oldest finished searches (caller must hold lock).
func (s *SearchService) retain(run *searchRun) {
	s.runs[run.handle] = run
	s.order = append(s.order, run.handle)

	for len(s.order) > retainedSearches {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
}

// searchRun is one background search. It sits between the solver and the
// caller's sink so the latest status can be queried.
type searchRun struct {
	handle domain.SearchHandle
	cancel context.CancelFunc
	done   chan struct{}
	sink   driven.StatusSink

	mu     sync.RWMutex
	status driving.SearchStatus
}

func (r *searchRun) Progress(p domain.Progress) {
	r.mu.Lock()
	r.status.Attempts = p.Attempt
	r.status.LastCandidate = p.Candidate
	r.mu.Unlock()

	r.sink.Progress(p)
}

func (r *searchRun) Complete(o domain.Outcome) {
	r.mu.Lock()
	r.status.Running = false
	r.status.Outcome = &o
	r.mu.Unlock()

	r.sink.Complete(o)
}

// snapshot returns a copy of the status.
func (r *searchRun) snapshot() driving.SearchStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := r.status
	if r.status.Outcome != nil {
		outcome := *r.status.Outcome
		status.Outcome = &outcome
	}
	return status
}
