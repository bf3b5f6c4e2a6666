package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
// Start replays progress for tried and completes with outcome.
type mockSearchService struct {
	tried   []string
	outcome domain.Outcome
	status  *driving.SearchStatus

	startErr  error
	waitErr   error
	statusErr error

	started   [domain.KeywordLength]string
	startCtx  context.Context
	cancelled []domain.SearchHandle
}

func (m *mockSearchService) Start(
	ctx context.Context, raw [domain.KeywordLength]string, sink driven.StatusSink,
) (domain.SearchHandle, error) {
	if m.startErr != nil {
		return "", m.startErr
	}
	m.started = raw
	m.startCtx = ctx
	for i, c := range m.tried {
		sink.Progress(domain.Progress{Candidate: c, Attempt: i + 1, Total: uint64(len(m.tried) + 1)})
	}
	sink.Complete(m.outcome)
	return "handle-1", nil
}

func (m *mockSearchService) Cancel(handle domain.SearchHandle) error {
	m.cancelled = append(m.cancelled, handle)
	return nil
}

func (m *mockSearchService) Wait(ctx context.Context, _ domain.SearchHandle) (domain.Outcome, error) {
	if m.waitErr != nil {
		return domain.Outcome{}, m.waitErr
	}
	if err := ctx.Err(); err != nil {
		return domain.Outcome{}, err
	}
	return m.outcome, nil
}

func (m *mockSearchService) Status(_ domain.SearchHandle) (*driving.SearchStatus, error) {
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	return m.status, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) Validate(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func testSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	s.Search.Pacing = 250 * time.Millisecond
	return &s
}
