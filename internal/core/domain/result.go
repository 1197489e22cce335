package domain

import "time"

// Sections is the named breakdown of the composed document. Conditional
// sections are empty strings when omitted from the document; the
// breakdown and the document are projections of the same evaluation, so
// they can never disagree.
type Sections struct {
	// Hook is the title plus the style-specific opening line.
	Hook string `json:"hook"`

	// Overview is the audience-aware summary with fixed bullets.
	Overview string `json:"overview"`

	// KeyPoints is the "WHAT YOU'LL LEARN" block.
	KeyPoints string `json:"keyPoints"`

	// Timestamps is the chapter block, supplied or placeholder.
	Timestamps string `json:"timestamps"`

	// CallToAction is the fixed LIKE/SUBSCRIBE block.
	CallToAction string `json:"callToAction"`

	// Links is the resources block; empty when no links were supplied.
	Links string `json:"links,omitempty"`

	// SocialLinks is the connect block; empty when none were supplied.
	SocialLinks string `json:"socialLinks,omitempty"`

	// SEOParagraph is the keyword-bearing closing paragraph.
	SEOParagraph string `json:"seoParagraph"`
}

// Result is the full response for one compose call.
type Result struct {
	// Title echoes the request title.
	Title string `json:"title"`

	// Concept echoes the request concept.
	Concept string `json:"concept"`

	// GeneratedAt is when the description was composed.
	GeneratedAt time.Time `json:"generatedAt"`

	// Description is the composed document, sections joined by blank
	// lines in the fixed order.
	Description string `json:"description"`

	// Sections is the named breakdown of Description.
	Sections Sections `json:"sections"`

	// Hashtags is the computed tag list. It is returned even when the
	// hashtag line is excluded from Description.
	Hashtags []string `json:"hashtags"`

	// Analysis is the SEO rubric output for Description.
	Analysis Analysis `json:"analysis"`

	// Recommendations are the improvement suggestions, in rule order.
	Recommendations []string `json:"recommendations"`

	// SEOTips is the fixed list of general optimisation advice.
	SEOTips []string `json:"seoTips"`
}
