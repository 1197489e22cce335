package services

import "github.com/tubedraft/tubedraft-cli/internal/core/domain"

// maxKeywords caps the flattened keyword list.
const maxKeywords = 10

// extractKeywords flattens a KeywordSet into an ordered list of keyword
// strings: all primary keywords first, then all secondary, truncated to
// maxKeywords. Duplicates survive at this stage; the SEO paragraph and
// hashtag generators dedupe where it matters. A nil set yields an empty
// list.
func extractKeywords(set *domain.KeywordSet) []string {
	if set == nil {
		return nil
	}

	keywords := make([]string, 0, maxKeywords)
	for _, kw := range set.Recommended.Primary {
		if len(keywords) == maxKeywords {
			return keywords
		}
		keywords = append(keywords, kw.Keyword)
	}
	for _, kw := range set.Recommended.Secondary {
		if len(keywords) == maxKeywords {
			return keywords
		}
		keywords = append(keywords, kw.Keyword)
	}

	return keywords
}
