package services

import (
	"strings"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

// composed is the single evaluation of all section generators for one
// request. The document text and the named breakdown are both projected
// from it, so they cannot drift apart.
type composed struct {
	sections domain.Sections
	hashtags []string
	document string
}

// composeDocument runs every section generator once and assembles the
// document in the fixed order: hook, overview, key points, timestamps,
// call to action, links, social links, SEO paragraph, hashtag line.
// Links and social links are omitted entirely when sourceless; the
// hashtag line is included only when the request asks for it.
func composeDocument(req domain.DescriptionRequest, keywords []string) composed {
	c := composed{
		sections: domain.Sections{
			Hook:         hookFor(req.ContentStyle, req.Title, req.Concept),
			Overview:     overviewFor(req.ContentStyle, req.TargetAudience),
			KeyPoints:    keyPointsFor(req.ContentStyle),
			Timestamps:   timestampsFor(req.ContentStyle, req.Timestamps),
			CallToAction: callToAction(),
			Links:        linksFor(req.Links),
			SocialLinks:  socialLinksFor(req.SocialLinks),
			SEOParagraph: seoParagraphFor(req.Concept, keywords),
		},
		hashtags: hashtagsFor(req.Concept, keywords),
	}

	parts := []string{
		c.sections.Hook,
		c.sections.Overview,
		c.sections.KeyPoints,
		c.sections.Timestamps,
		c.sections.CallToAction,
	}
	if c.sections.Links != "" {
		parts = append(parts, c.sections.Links)
	}
	if c.sections.SocialLinks != "" {
		parts = append(parts, c.sections.SocialLinks)
	}
	parts = append(parts, c.sections.SEOParagraph)
	if req.HashtagsEnabled() {
		parts = append(parts, "\n"+strings.Join(c.hashtags, " "))
	}

	c.document = strings.Join(parts, "\n\n")
	return c
}
