package mcp

import (
	"net/http"

	"github.com/custodia-labs/keyword-solver/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs keyword searches.
	Search driving.SearchService

	// Settings exposes the effective configuration.
	Settings driving.SettingsService

	// Metrics is served on /metrics in HTTP mode.
	Metrics http.Handler
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	// Settings and Metrics are optional
	return nil
}
