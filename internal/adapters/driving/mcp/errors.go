// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Tubedraft. It exposes the description composer to AI assistants as a
// generate_description tool.
package mcp

import "errors"

// ErrMissingDescriptionService is returned when the description service is not provided.
var ErrMissingDescriptionService = errors.New("mcp: description service is required")
