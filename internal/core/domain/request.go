package domain

// DescriptionRequest describes the video a caller wants a description for.
// Title and Concept are required; everything else defaults.
type DescriptionRequest struct {
	// Title is the video title, reproduced verbatim at the top of the hook.
	Title string `json:"title"`

	// Concept is the video topic, interpolated into hook, SEO paragraph
	// and the leading hashtag.
	Concept string `json:"concept"`

	// Keywords is the caller-supplied keyword research, if any.
	Keywords *KeywordSet `json:"keywords,omitempty"`

	// ContentStyle selects the template tables. Empty defaults to
	// StyleTutorial; unknown values fall back to tutorial per generator.
	ContentStyle ContentStyle `json:"contentStyle,omitempty"`

	// TargetAudience names who the video is for. Empty defaults to
	// "general", which suppresses the audience prefix in the overview.
	TargetAudience string `json:"targetAudience,omitempty"`

	// Timestamps are caller-supplied chapters. When empty the composer
	// emits per-style placeholder chapters instead.
	Timestamps []Timestamp `json:"timestamps,omitempty"`

	// Links are resource URLs, rendered verbatim in input order.
	Links []string `json:"links,omitempty"`

	// SocialLinks are platform handles, rendered in slice order.
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`

	// IncludeHashtags controls whether the hashtag line is appended to
	// the document. Hashtags are computed and returned either way.
	IncludeHashtags *bool `json:"includeHashtags,omitempty"`
}

// Timestamp is a single chapter marker.
type Timestamp struct {
	// Time is the chapter offset, e.g. "02:30". Rendered verbatim.
	Time string `json:"time"`

	// Label is the chapter name.
	Label string `json:"label"`
}

// SocialLink is one platform handle. SocialLinks are a slice rather
// than a map so rendering order is deterministic; adapters decide how
// to order entries arriving as JSON objects.
type SocialLink struct {
	// Platform is the lowercase platform key, e.g. "twitter".
	Platform string `json:"platform"`

	// URL is the profile URL, rendered verbatim.
	URL string `json:"url"`
}

// KeywordSet mirrors the keyword-research shape callers supply.
// Only the Keyword field of each entry is consumed.
type KeywordSet struct {
	// Recommended holds the ranked keyword lists.
	Recommended RecommendedKeywords `json:"recommended"`
}

// RecommendedKeywords splits keywords by priority.
type RecommendedKeywords struct {
	// Primary keywords are flattened first.
	Primary []Keyword `json:"primary,omitempty"`

	// Secondary keywords follow primary in the flattened list.
	Secondary []Keyword `json:"secondary,omitempty"`
}

// Keyword is a single ranked keyword entry. Callers may send extra
// fields (search volume, difficulty); they are ignored.
type Keyword struct {
	// Keyword is the keyword string itself.
	Keyword string `json:"keyword"`
}

// HashtagsEnabled resolves the IncludeHashtags default (true).
func (r *DescriptionRequest) HashtagsEnabled() bool {
	if r.IncludeHashtags == nil {
		return true
	}
	return *r.IncludeHashtags
}
