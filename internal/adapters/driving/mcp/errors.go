// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// keyword solver. It lets AI assistants run searches and inspect their status.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
