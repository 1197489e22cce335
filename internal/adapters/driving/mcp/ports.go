package mcp

import (
	"github.com/tubedraft/tubedraft-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Description composes and scores video descriptions.
	Description driving.DescriptionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Description == nil {
		return ErrMissingDescriptionService
	}
	return nil
}
