package services

import "github.com/tubedraft/tubedraft-cli/internal/core/domain"

// Recommendation messages, one per rule.
const (
	recShortDescription  = "Description is too short. Aim for at least 200 characters for better SEO."
	recFewKeywords       = "Include more of your target keywords naturally in the description."
	recNoTimestamps      = "Add timestamps to improve viewer experience and search visibility."
	recNoCallToAction    = "Add a call-to-action (like, subscribe, comment) to boost engagement."
	recNoHashtags        = "Add relevant hashtags to increase discoverability."
	recHighDensity       = "Keyword density is too high. Reduce repetition to avoid over-optimisation penalties."
	recWellOptimised     = "Your description is well optimised. Keep up the good work!"
	maxHealthyDensity    = 5.0
	minFoundKeywords     = 3
	minDescriptionLength = 200
)

// recommendFor evaluates the fixed-order rule checklist against an
// analysis. Each rule fires independently; when none fire a single
// positive message is returned instead.
func recommendFor(a domain.Analysis) []string {
	var recs []string

	if a.TotalLength < minDescriptionLength {
		recs = append(recs, recShortDescription)
	}
	if len(a.KeywordsFound) < minFoundKeywords {
		recs = append(recs, recFewKeywords)
	}
	if !a.HasTimestamps {
		recs = append(recs, recNoTimestamps)
	}
	if !a.HasCallToAction {
		recs = append(recs, recNoCallToAction)
	}
	if !a.HasHashtags {
		recs = append(recs, recNoHashtags)
	}
	if a.KeywordDensity > maxHealthyDensity {
		recs = append(recs, recHighDensity)
	}

	if len(recs) == 0 {
		recs = append(recs, recWellOptimised)
	}
	return recs
}

// seoTips is the fixed advice list returned with every result.
var seoTips = []string{
	"Front-load your most important keywords in the first 100-150 characters - that is what shows in search results.",
	"Link to one or two related videos or playlists to increase session time.",
	"Use timestamps so viewers (and search) can jump to the relevant section.",
	"Mention your main keyword naturally two or three times across the description.",
	"Keep hashtags to a handful of relevant tags - piling them on dilutes their value.",
}

// seoTipsList returns a copy of the fixed tips so callers cannot mutate
// the shared slice.
func seoTipsList() []string {
	out := make([]string, len(seoTips))
	copy(out, seoTips)
	return out
}
