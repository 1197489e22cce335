package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Tubedraft resources.
	uriScheme = "tubedraft://"
)

// styleInfo describes one content style in the catalog resource.
type styleInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// styleCatalog lists the supported content styles with a short
// description of the template flavour each selects.
var styleCatalog = map[domain.ContentStyle]string{
	domain.StyleTutorial:      "Step-by-step guide with learning-focused sections. The default style.",
	domain.StyleReview:        "Honest review framing with pros, cons and a verdict.",
	domain.StyleVlog:          "Personal, experience-led framing.",
	domain.StyleEntertainment: "High-energy framing for entertainment content.",
	domain.StyleEducational:   "Explainer framing with concepts and misconceptions.",
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing content styles.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "styles",
		Name:        "styles",
		Description: "Supported content styles and what each changes in the description",
		MIMEType:    "application/json",
	}, s.handleStylesResource)
}

// handleStylesResource returns the content style catalog.
func (s *Server) handleStylesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	styles := domain.ContentStyles()
	infos := make([]styleInfo, len(styles))
	for i, style := range styles {
		infos[i] = styleInfo{
			ID:          string(style),
			Description: styleCatalog[style],
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling styles: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
