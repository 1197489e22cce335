package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

func kwList(words ...string) []domain.Keyword {
	out := make([]domain.Keyword, len(words))
	for i, w := range words {
		out[i] = domain.Keyword{Keyword: w}
	}
	return out
}

func TestExtractKeywords(t *testing.T) {
	t.Run("nil set yields empty list", func(t *testing.T) {
		assert.Empty(t, extractKeywords(nil))
	})

	t.Run("empty set yields empty list", func(t *testing.T) {
		assert.Empty(t, extractKeywords(&domain.KeywordSet{}))
	})

	t.Run("primary precedes secondary", func(t *testing.T) {
		set := &domain.KeywordSet{
			Recommended: domain.RecommendedKeywords{
				Primary:   kwList("guitar", "chords"),
				Secondary: kwList("beginner", "lesson"),
			},
		}
		assert.Equal(t, []string{"guitar", "chords", "beginner", "lesson"}, extractKeywords(set))
	})

	t.Run("duplicates survive extraction", func(t *testing.T) {
		set := &domain.KeywordSet{
			Recommended: domain.RecommendedKeywords{
				Primary:   kwList("guitar"),
				Secondary: kwList("guitar"),
			},
		}
		assert.Equal(t, []string{"guitar", "guitar"}, extractKeywords(set))
	})

	t.Run("truncates to ten entries", func(t *testing.T) {
		set := &domain.KeywordSet{
			Recommended: domain.RecommendedKeywords{
				Primary: kwList("a", "b", "c", "d", "e", "f", "g"),
				Secondary: kwList("h", "i", "j", "k", "l"),
			},
		}
		got := extractKeywords(set)
		assert.Len(t, got, 10)
		assert.Equal(t, "j", got[9])
	})

	t.Run("truncation can land inside primary", func(t *testing.T) {
		set := &domain.KeywordSet{
			Recommended: domain.RecommendedKeywords{
				Primary: kwList("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"),
			},
		}
		got := extractKeywords(set)
		assert.Len(t, got, 10)
		assert.Equal(t, "j", got[9])
	})
}
