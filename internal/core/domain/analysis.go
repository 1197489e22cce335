package domain

// Rating is the qualitative band for an SEO score.
type Rating string

const (
	// RatingExcellent is awarded at 80 and above.
	RatingExcellent Rating = "excellent"
	// RatingGood is awarded at 60 and above.
	RatingGood Rating = "good"
	// RatingFair is awarded at 40 and above.
	RatingFair Rating = "fair"
	// RatingNeedsImprovement is awarded below 40. The current scoring
	// weights bottom out at 40, but the band is kept as a general
	// threshold rather than a hardcoded floor.
	RatingNeedsImprovement Rating = "needs improvement"
)

// RatingFor maps a score to its qualitative band.
func RatingFor(score int) Rating {
	switch {
	case score >= 80:
		return RatingExcellent
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	default:
		return RatingNeedsImprovement
	}
}

// KeywordHit records how often one keyword occurs in the document.
// Keywords with zero occurrences are omitted from Analysis entirely.
type KeywordHit struct {
	// Keyword is the keyword as supplied by the caller.
	Keyword string `json:"keyword"`

	// Count is the case-insensitive occurrence count.
	Count int `json:"count"`
}

// Analysis holds the SEO metrics computed over a composed description.
// It is a pure function of the document text and the keyword list:
// identical inputs always produce an identical Analysis.
type Analysis struct {
	// TotalLength is the document length in bytes.
	TotalLength int `json:"totalLength"`

	// WordCount is the number of whitespace-delimited tokens.
	WordCount int `json:"wordCount"`

	// LineCount is the number of newline-delimited lines.
	LineCount int `json:"lineCount"`

	// KeywordsFound lists keywords that occur at least once, in the
	// order they appear in the keyword list.
	KeywordsFound []KeywordHit `json:"keywordsFound"`

	// KeywordDensity is found occurrences over words as a percentage,
	// rounded to two decimals. Defined as 0 for an empty document.
	KeywordDensity float64 `json:"keywordDensity"`

	// HasTimestamps reports whether the document contains "TIMESTAMPS".
	HasTimestamps bool `json:"hasTimestamps"`

	// HasCallToAction reports whether the document contains "SUBSCRIBE"
	// or "LIKE".
	HasCallToAction bool `json:"hasCallToAction"`

	// HasHashtags reports whether the document contains "#".
	HasHashtags bool `json:"hasHashtags"`

	// HasLinks reports whether the document contains "http" or "LINKS".
	HasLinks bool `json:"hasLinks"`

	// SEOScore is the rubric score in [0,100]. The additive rubric
	// keeps it at 40 or above in practice.
	SEOScore int `json:"seoScore"`

	// Rating is the qualitative band for SEOScore.
	Rating Rating `json:"rating"`
}
