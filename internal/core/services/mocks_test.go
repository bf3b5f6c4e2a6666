package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

// --- Mock implementations ---

// mockOracle implements driven.WordOracle for testing.
// Candidates listed in words are Valid; verdicts maps call numbers (1-based)
// to a scripted verdict; everything else is NotFound.
type mockOracle struct {
	mu       sync.Mutex
	words    map[string]bool
	verdicts map[int]domain.Verdict
	calls    []string

	// onCall runs before the verdict is returned, e.g. to cancel the search.
	onCall func(call int, candidate string)

	// block makes Validate wait for ctx, like a hung request.
	block bool
}

func (m *mockOracle) Validate(ctx context.Context, candidate string) domain.Verdict {
	m.mu.Lock()
	m.calls = append(m.calls, candidate)
	call := len(m.calls)
	onCall := m.onCall
	block := m.block
	verdict, scripted := m.verdicts[call]
	valid := m.words[candidate]
	m.mu.Unlock()

	if onCall != nil {
		onCall(call, candidate)
	}

	switch {
	case block:
		<-ctx.Done()
		return domain.Cancelled()
	case scripted:
		return verdict
	case valid:
		return domain.Valid()
	default:
		return domain.NotFound()
	}
}

func (m *mockOracle) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// mockPacer implements driven.Pacer without sleeping.
type mockPacer struct {
	mu     sync.Mutex
	waits  []time.Duration
	onWait func(n int) error
}

func (m *mockPacer) Wait(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.waits = append(m.waits, d)
	n := len(m.waits)
	onWait := m.onWait
	m.mu.Unlock()

	if onWait != nil {
		if err := onWait(n); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (m *mockPacer) Waits() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.waits...)
}

// recordingSink implements driven.StatusSink and keeps every update.
type recordingSink struct {
	mu       sync.Mutex
	progress []domain.Progress
	outcomes []domain.Outcome
}

func (r *recordingSink) Progress(p domain.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, p)
}

func (r *recordingSink) Complete(o domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *recordingSink) Progresses() []domain.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Progress(nil), r.progress...)
}

func (r *recordingSink) Outcomes() []domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Outcome(nil), r.outcomes...)
}

// callbackSink runs onComplete from Complete, like a UI that refreshes its
// view of the search when it ends.
type callbackSink struct {
	recordingSink
	onComplete func()
}

func (c *callbackSink) Complete(o domain.Outcome) {
	c.recordingSink.Complete(o)
	if c.onComplete != nil {
		c.onComplete()
	}
}

// mockConfigStore implements driven.ConfigStore in memory.
type mockConfigStore struct {
	mu     sync.Mutex
	values map[string]any
	setErr error
}

func newMockConfigStore(values map[string]any) *mockConfigStore {
	if values == nil {
		values = make(map[string]any)
	}
	return &mockConfigStore{values: values}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	v, _ := m.Get(key)
	s, _ := v.(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) (int, bool) {
	v, _ := m.Get(key)
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/keyword/config.toml" }
