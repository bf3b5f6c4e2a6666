package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

// SolveInput is the input schema for the solve_keyword tool.
type SolveInput struct {
	Sets []string `json:"sets" jsonschema:"six letter sets, one per keyword position; each lists the letters allowed there"`
}

// SolveOutput is the output schema for the solve_keyword tool.
type SolveOutput struct {
	Outcome  string   `json:"outcome"`
	Keyword  string   `json:"keyword,omitempty"`
	Message  string   `json:"message"`
	Attempts int      `json:"attempts"`
	Tried    []string `json:"tried"`
	Handle   string   `json:"handle"`
}

// NormalizeInput is the input schema for the normalize_letters tool.
type NormalizeInput struct {
	Raw string `json:"raw" jsonschema:"letters as typed, any case, spaces and repeats allowed"`
}

// NormalizeOutput is the output schema for the normalize_letters tool.
type NormalizeOutput struct {
	Letters string `json:"letters"`
}

// CountInput is the input schema for the count_candidates tool.
type CountInput struct {
	Sets []string `json:"sets" jsonschema:"six letter sets, one per keyword position"`
}

// CountOutput is the output schema for the count_candidates tool.
type CountOutput struct {
	Sets  []string `json:"sets"`
	Total uint64   `json:"total"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "solve_keyword",
		Description: "Find the first dictionary word that takes one letter from each of six letter sets. " +
			"Lookups are paced, so large searches take a while.",
	}, s.handleSolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize_letters",
		Description: "Uppercase, de-duplicate and sort a letter set the way searches do",
	}, s.handleNormalize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "count_candidates",
		Description: "Count the keywords a search over six letter sets would try, without any lookups",
	}, s.handleCount)
}

// handleSolve runs one search to completion. Cancelling the request cancels
// the search, which then reports a cancelled outcome.
func (s *Server) handleSolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	raw, err := toRaw(input.Sets)
	if err != nil {
		return nil, SolveOutput{}, err
	}

	sink := &triedSink{}
	handle, err := s.ports.Search.Start(ctx, raw, sink)
	if err != nil {
		return nil, SolveOutput{}, fmt.Errorf("starting search: %w", err)
	}

	// The search is bound to ctx, so waiting past ctx still ends promptly.
	outcome, err := s.ports.Search.Wait(context.WithoutCancel(ctx), handle)
	if err != nil {
		return nil, SolveOutput{}, fmt.Errorf("waiting for search %s: %w", handle, err)
	}

	return nil, SolveOutput{
		Outcome:  outcome.Kind.String(),
		Keyword:  outcome.Keyword,
		Message:  outcome.Message(),
		Attempts: outcome.Attempts,
		Tried:    sink.Tried(),
		Handle:   handle.String(),
	}, nil
}

// handleNormalize handles the normalize_letters tool invocation.
func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizeInput,
) (*mcp.CallToolResult, NormalizeOutput, error) {
	return nil, NormalizeOutput{Letters: domain.Normalize(input.Raw).String()}, nil
}

// handleCount handles the count_candidates tool invocation.
func (s *Server) handleCount(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CountInput,
) (*mcp.CallToolResult, CountOutput, error) {
	raw, err := toRaw(input.Sets)
	if err != nil {
		return nil, CountOutput{}, err
	}

	sets := domain.NormalizeAll(raw)
	output := CountOutput{
		Sets:  make([]string, 0, domain.KeywordLength),
		Total: sets.Combinations(),
	}
	for _, set := range sets {
		output.Sets = append(output.Sets, set.String())
	}
	return nil, output, nil
}

// toRaw checks that exactly six sets were given.
func toRaw(sets []string) ([domain.KeywordLength]string, error) {
	var raw [domain.KeywordLength]string
	if len(sets) != domain.KeywordLength {
		return raw, fmt.Errorf("%w: expected %d letter sets, got %d",
			domain.ErrInvalidInput, domain.KeywordLength, len(sets))
	}
	copy(raw[:], sets)
	return raw, nil
}

// triedSink collects the rejected candidates of a search.
type triedSink struct {
	mu    sync.Mutex
	tried []string
}

func (t *triedSink) Progress(p domain.Progress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tried = append(t.tried, p.Candidate)
}

func (t *triedSink) Complete(domain.Outcome) {}

// Tried returns the rejected candidates in order, never nil.
func (t *triedSink) Tried() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append(make([]string, 0, len(t.tried)), t.tried...)
}
