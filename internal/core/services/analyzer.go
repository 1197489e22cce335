package services

import (
	"math"
	"regexp"
	"strings"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

// analyzeDocument computes the SEO metrics for a composed document.
// It is a pure function of the document and keyword list.
func analyzeDocument(document string, keywords []string) domain.Analysis {
	a := domain.Analysis{
		TotalLength:     len(document),
		WordCount:       len(strings.Fields(document)),
		LineCount:       len(strings.Split(document, "\n")),
		HasTimestamps:   strings.Contains(document, "TIMESTAMPS"),
		HasCallToAction: strings.Contains(document, "SUBSCRIBE") || strings.Contains(document, "LIKE"),
		HasHashtags:     strings.Contains(document, "#"),
		HasLinks:        strings.Contains(document, "http") || strings.Contains(document, "LINKS"),
	}

	totalHits := 0
	for _, kw := range keywords {
		count := countOccurrences(document, kw)
		if count == 0 {
			continue
		}
		a.KeywordsFound = append(a.KeywordsFound, domain.KeywordHit{Keyword: kw, Count: count})
		totalHits += count
	}

	// Density is defined as 0 for an empty document rather than NaN.
	if a.WordCount > 0 {
		density := float64(totalHits) / float64(a.WordCount) * 100
		a.KeywordDensity = math.Round(density*100) / 100
	}

	a.SEOScore = scoreDocument(a)
	a.Rating = domain.RatingFor(a.SEOScore)
	return a
}

// countOccurrences counts case-insensitive occurrences of keyword in
// document. The keyword is quoted, so regex metacharacters in caller
// keywords match literally.
func countOccurrences(document, keyword string) int {
	if keyword == "" {
		return 0
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(keyword))
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(document, -1))
}

// Scoring rubric weights.
const (
	scoreBase = 40
	scoreMax  = 100

	idealLengthMin = 200
	idealLengthMax = 5000
)

// scoreDocument applies the additive rubric: base 40, plus bonuses for
// length in range, keyword coverage, timestamps, call to action,
// hashtags and links, clamped to 100.
func scoreDocument(a domain.Analysis) int {
	score := scoreBase

	switch {
	case a.TotalLength >= idealLengthMin && a.TotalLength <= idealLengthMax:
		score += 15
	case a.TotalLength > idealLengthMax:
		score += 10
	}

	switch {
	case len(a.KeywordsFound) >= 3:
		score += 15
	case len(a.KeywordsFound) >= 1:
		score += 10
	}

	if a.HasTimestamps {
		score += 10
	}
	if a.HasCallToAction {
		score += 10
	}
	if a.HasHashtags {
		score += 5
	}
	if a.HasLinks {
		score += 5
	}

	if score > scoreMax {
		score = scoreMax
	}
	return score
}
