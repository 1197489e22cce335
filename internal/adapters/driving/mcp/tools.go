package mcp

import (
	"context"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

// DescribeInput is the input schema for the generate_description tool.
// It mirrors domain.DescriptionRequest field for field.
type DescribeInput struct {
	Title           string            `json:"title" jsonschema:"the video title"`
	Concept         string            `json:"concept" jsonschema:"the main topic or concept of the video"`
	Keywords        *KeywordsInput    `json:"keywords,omitempty" jsonschema:"keyword research to weave into the description"`
	ContentStyle    string            `json:"content_style,omitempty" jsonschema:"one of tutorial, review, vlog, entertainment, educational (default tutorial)"`
	TargetAudience  string            `json:"target_audience,omitempty" jsonschema:"who the video is for (default general)"`
	Timestamps      []TimestampInput  `json:"timestamps,omitempty" jsonschema:"chapter markers; placeholders are generated when omitted"`
	Links           []string          `json:"links,omitempty" jsonschema:"resource links to include verbatim"`
	SocialLinks     map[string]string `json:"social_links,omitempty" jsonschema:"platform name to profile URL"`
	IncludeHashtags *bool             `json:"include_hashtags,omitempty" jsonschema:"append the hashtag line to the description (default true)"`
}

// KeywordsInput mirrors the keyword research shape.
type KeywordsInput struct {
	Recommended RecommendedInput `json:"recommended"`
}

// RecommendedInput splits keywords by priority.
type RecommendedInput struct {
	Primary   []KeywordInput `json:"primary,omitempty"`
	Secondary []KeywordInput `json:"secondary,omitempty"`
}

// KeywordInput is a single keyword entry; extra fields are ignored.
type KeywordInput struct {
	Keyword string `json:"keyword"`
}

// TimestampInput is a single chapter marker.
type TimestampInput struct {
	Time  string `json:"time" jsonschema:"chapter offset, e.g. 02:30"`
	Label string `json:"label" jsonschema:"chapter name"`
}

// DescribeOutput is the output schema for the generate_description tool.
type DescribeOutput struct {
	Title           string         `json:"title"`
	Concept         string         `json:"concept"`
	GeneratedAt     time.Time      `json:"generated_at"`
	Description     string         `json:"description"`
	Sections        SectionsOutput `json:"sections"`
	Hashtags        []string       `json:"hashtags"`
	Analysis        AnalysisOutput `json:"analysis"`
	Recommendations []string       `json:"recommendations"`
	SEOTips         []string       `json:"seo_tips"`
}

// SectionsOutput is the named breakdown of the composed description.
type SectionsOutput struct {
	Hook         string `json:"hook"`
	Overview     string `json:"overview"`
	KeyPoints    string `json:"key_points"`
	Timestamps   string `json:"timestamps"`
	CallToAction string `json:"call_to_action"`
	Links        string `json:"links,omitempty"`
	SocialLinks  string `json:"social_links,omitempty"`
	SEOParagraph string `json:"seo_paragraph"`
}

// AnalysisOutput carries the SEO metrics for the composed description.
type AnalysisOutput struct {
	TotalLength     int                `json:"total_length"`
	WordCount       int                `json:"word_count"`
	LineCount       int                `json:"line_count"`
	KeywordsFound   []KeywordHitOutput `json:"keywords_found"`
	KeywordDensity  float64            `json:"keyword_density"`
	HasTimestamps   bool               `json:"has_timestamps"`
	HasCallToAction bool               `json:"has_call_to_action"`
	HasHashtags     bool               `json:"has_hashtags"`
	HasLinks        bool               `json:"has_links"`
	SEOScore        int                `json:"seo_score"`
	Rating          string             `json:"rating"`
}

// KeywordHitOutput is one keyword occurrence count.
type KeywordHitOutput struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_description",
		Description: "Generate an SEO-optimised YouTube video description with analysis and recommendations",
	}, s.handleGenerateDescription)
}

// handleGenerateDescription handles the generate_description tool invocation.
func (s *Server) handleGenerateDescription(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DescribeInput,
) (*mcp.CallToolResult, DescribeOutput, error) {
	result, err := s.ports.Description.Compose(ctx, toDomainRequest(input))
	if err != nil {
		return nil, DescribeOutput{}, err
	}

	return nil, toOutput(result), nil
}

// toDomainRequest converts tool input to the domain request. JSON
// objects carry no order, so social links are sorted by platform key to
// keep composition deterministic.
func toDomainRequest(input DescribeInput) domain.DescriptionRequest {
	req := domain.DescriptionRequest{
		Title:           input.Title,
		Concept:         input.Concept,
		ContentStyle:    domain.ContentStyle(input.ContentStyle),
		TargetAudience:  input.TargetAudience,
		Links:           input.Links,
		IncludeHashtags: input.IncludeHashtags,
	}

	if input.Keywords != nil {
		set := &domain.KeywordSet{}
		for _, kw := range input.Keywords.Recommended.Primary {
			set.Recommended.Primary = append(set.Recommended.Primary, domain.Keyword{Keyword: kw.Keyword})
		}
		for _, kw := range input.Keywords.Recommended.Secondary {
			set.Recommended.Secondary = append(set.Recommended.Secondary, domain.Keyword{Keyword: kw.Keyword})
		}
		req.Keywords = set
	}

	for _, ts := range input.Timestamps {
		req.Timestamps = append(req.Timestamps, domain.Timestamp{Time: ts.Time, Label: ts.Label})
	}

	if len(input.SocialLinks) > 0 {
		platforms := make([]string, 0, len(input.SocialLinks))
		for platform := range input.SocialLinks {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)
		for _, platform := range platforms {
			req.SocialLinks = append(req.SocialLinks, domain.SocialLink{
				Platform: platform,
				URL:      input.SocialLinks[platform],
			})
		}
	}

	return req
}

// toOutput converts a domain result to the tool output schema.
func toOutput(result *domain.Result) DescribeOutput {
	hits := make([]KeywordHitOutput, len(result.Analysis.KeywordsFound))
	for i, hit := range result.Analysis.KeywordsFound {
		hits[i] = KeywordHitOutput{Keyword: hit.Keyword, Count: hit.Count}
	}

	return DescribeOutput{
		Title:       result.Title,
		Concept:     result.Concept,
		GeneratedAt: result.GeneratedAt,
		Description: result.Description,
		Sections: SectionsOutput{
			Hook:         result.Sections.Hook,
			Overview:     result.Sections.Overview,
			KeyPoints:    result.Sections.KeyPoints,
			Timestamps:   result.Sections.Timestamps,
			CallToAction: result.Sections.CallToAction,
			Links:        result.Sections.Links,
			SocialLinks:  result.Sections.SocialLinks,
			SEOParagraph: result.Sections.SEOParagraph,
		},
		Hashtags: result.Hashtags,
		Analysis: AnalysisOutput{
			TotalLength:     result.Analysis.TotalLength,
			WordCount:       result.Analysis.WordCount,
			LineCount:       result.Analysis.LineCount,
			KeywordsFound:   hits,
			KeywordDensity:  result.Analysis.KeywordDensity,
			HasTimestamps:   result.Analysis.HasTimestamps,
			HasCallToAction: result.Analysis.HasCallToAction,
			HasHashtags:     result.Analysis.HasHashtags,
			HasLinks:        result.Analysis.HasLinks,
			SEOScore:        result.Analysis.SEOScore,
			Rating:          string(result.Analysis.Rating),
		},
		Recommendations: result.Recommendations,
		SEOTips:         result.SEOTips,
	}
}
