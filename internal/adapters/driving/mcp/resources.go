package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for keyword resources.
	uriScheme = "keyword://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the effective settings.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective solver settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	// Template for search status.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "searches/{handle}",
		Name:        "search-status",
		Description: "Status of a recent search started by solve_keyword",
		MIMEType:    "application/json",
	}, s.handleSearchResource)
}

// settingsInfo is the JSON form of the settings resource.
type settingsInfo struct {
	OracleBaseURL    string `json:"oracle_base_url"`
	OracleUserAgent  string `json:"oracle_user_agent"`
	OracleMinSpacing int64  `json:"oracle_min_spacing_ms"`
	SearchPacing     int64  `json:"search_pacing_ms"`
}

// handleSettingsResource returns the effective settings, or the defaults when
// no settings service is wired.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		settings = *current
	}

	return jsonResource(req.Params.URI, settingsInfo{
		OracleBaseURL:    settings.Oracle.BaseURL,
		OracleUserAgent:  settings.Oracle.UserAgent,
		OracleMinSpacing: settings.Oracle.MinSpacing.Milliseconds(),
		SearchPacing:     settings.Search.Pacing.Milliseconds(),
	})
}

// searchInfo is the JSON form of a search status resource.
type searchInfo struct {
	Handle        string   `json:"handle"`
	Sets          []string `json:"sets"`
	Running       bool     `json:"running"`
	Attempts      int      `json:"attempts"`
	Total         uint64   `json:"total"`
	LastCandidate string   `json:"last_candidate,omitempty"`
	Outcome       string   `json:"outcome,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// handleSearchResource returns the status of a search.
func (s *Server) handleSearchResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract handle from URI: keyword://searches/{handle}
	handle := extractSearchHandle(req.Params.URI)
	if handle == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	status, err := s.ports.Search.Status(domain.SearchHandle(handle))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting search status: %w", err)
	}

	info := searchInfo{
		Handle:        status.Handle.String(),
		Sets:          make([]string, 0, domain.KeywordLength),
		Running:       status.Running,
		Attempts:      status.Attempts,
		Total:         status.Total,
		LastCandidate: status.LastCandidate,
	}
	for _, set := range status.Sets {
		info.Sets = append(info.Sets, set.String())
	}
	if status.Outcome != nil {
		info.Outcome = status.Outcome.Kind.String()
		info.Message = status.Outcome.Message()
	}

	return jsonResource(req.Params.URI, info)
}

// jsonResource marshals v as the single content of a resource.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSearchHandle extracts the handle from a URI like keyword://searches/{handle}.
func extractSearchHandle(uri string) string {
	const prefix = uriScheme + "searches/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	handle := strings.TrimPrefix(uri, prefix)
	if strings.Contains(handle, "/") {
		return ""
	}
	return handle
}
