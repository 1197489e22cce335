package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

func TestHookFor(t *testing.T) {
	t.Run("title precedes the opener", func(t *testing.T) {
		hook := hookFor(domain.StyleTutorial, "Learn Guitar Fast", "guitar basics")
		assert.True(t, strings.HasPrefix(hook,
			"Learn Guitar Fast\n\nIn this comprehensive guitar basics tutorial"))
	})

	t.Run("each style has a distinct opener", func(t *testing.T) {
		seen := map[string]bool{}
		for _, style := range domain.ContentStyles() {
			hook := hookFor(style, "Title", "topic")
			assert.Contains(t, hook, "topic")
			assert.False(t, seen[hook], "style %s reuses another opener", style)
			seen[hook] = true
		}
	})

	t.Run("unknown style falls back to tutorial", func(t *testing.T) {
		assert.Equal(t,
			hookFor(domain.StyleTutorial, "T", "c"),
			hookFor(domain.ContentStyle("podcast"), "T", "c"))
	})
}

func TestOverviewFor(t *testing.T) {
	t.Run("general audience gets no prefix", func(t *testing.T) {
		overview := overviewFor(domain.StyleTutorial, "general")
		assert.True(t, strings.HasPrefix(overview, "This step-by-step guide covers:\n"))
	})

	t.Run("specific audience gets a prefix", func(t *testing.T) {
		overview := overviewFor(domain.StyleReview, "busy parents")
		assert.True(t, strings.HasPrefix(overview, "Perfect for busy parents, this in-depth review covers:\n"))
	})

	t.Run("unknown style uses the generic noun", func(t *testing.T) {
		overview := overviewFor(domain.ContentStyle("podcast"), "general")
		assert.True(t, strings.HasPrefix(overview, "This video covers:\n"))
	})

	t.Run("always four bullets", func(t *testing.T) {
		overview := overviewFor(domain.StyleVlog, "general")
		assert.Equal(t, 4, strings.Count(overview, "• "))
	})
}

func TestKeyPointsFor(t *testing.T) {
	t.Run("header and five bullets", func(t *testing.T) {
		points := keyPointsFor(domain.StyleTutorial)
		assert.True(t, strings.HasPrefix(points, "WHAT YOU'LL LEARN:\n"))
		assert.Equal(t, 5, strings.Count(points, "• "))
	})

	t.Run("review and educational lists are distinct", func(t *testing.T) {
		tutorial := keyPointsFor(domain.StyleTutorial)
		review := keyPointsFor(domain.StyleReview)
		educational := keyPointsFor(domain.StyleEducational)
		assert.NotEqual(t, tutorial, review)
		assert.NotEqual(t, tutorial, educational)
		assert.NotEqual(t, review, educational)
	})

	t.Run("vlog reuses the tutorial list", func(t *testing.T) {
		assert.Equal(t, keyPointsFor(domain.StyleTutorial), keyPointsFor(domain.StyleVlog))
	})
}

func TestTimestampsFor(t *testing.T) {
	t.Run("supplied chapters render verbatim", func(t *testing.T) {
		block := timestampsFor(domain.StyleTutorial, []domain.Timestamp{
			{Time: "00:00", Label: "Intro"},
			{Time: "03:45", Label: "The Good Part"},
		})
		assert.Equal(t, "TIMESTAMPS:\n00:00 - Intro\n03:45 - The Good Part", block)
		assert.NotContains(t, block, placeholderNote)
	})

	t.Run("no chapters yields placeholders with note", func(t *testing.T) {
		block := timestampsFor(domain.StyleTutorial, nil)
		assert.True(t, strings.HasPrefix(block, "TIMESTAMPS:\n00:00 - Introduction\n"))
		assert.True(t, strings.HasSuffix(block, placeholderNote))
	})

	t.Run("placeholder sets differ per style", func(t *testing.T) {
		assert.NotEqual(t,
			timestampsFor(domain.StyleTutorial, nil),
			timestampsFor(domain.StyleReview, nil))
		assert.NotEqual(t,
			timestampsFor(domain.StyleReview, nil),
			timestampsFor(domain.StyleEducational, nil))
	})

	t.Run("vlog reuses the tutorial placeholders", func(t *testing.T) {
		assert.Equal(t,
			timestampsFor(domain.StyleTutorial, nil),
			timestampsFor(domain.StyleVlog, nil))
	})
}

func TestCallToAction(t *testing.T) {
	cta := callToAction()
	assert.Contains(t, cta, "LIKE")
	assert.Contains(t, cta, "SUBSCRIBE")
	assert.Contains(t, cta, "COMMENT")
	assert.Contains(t, cta, "SHARE")
}

func TestLinksFor(t *testing.T) {
	t.Run("empty input yields empty section", func(t *testing.T) {
		assert.Empty(t, linksFor(nil))
	})

	t.Run("links render verbatim in input order", func(t *testing.T) {
		block := linksFor([]string{"https://example.com", "https://b.example.com/x?y=1"})
		assert.Equal(t,
			"RESOURCES & LINKS:\nhttps://example.com\nhttps://b.example.com/x?y=1",
			block)
	})
}

func TestSocialLinksFor(t *testing.T) {
	t.Run("empty input yields empty section", func(t *testing.T) {
		assert.Empty(t, socialLinksFor(nil))
	})

	t.Run("known platforms use display names", func(t *testing.T) {
		block := socialLinksFor([]domain.SocialLink{
			{Platform: "twitter", URL: "https://twitter.com/me"},
			{Platform: "github", URL: "https://github.com/me"},
		})
		assert.Equal(t,
			"CONNECT WITH ME:\nTwitter: https://twitter.com/me\nGitHub: https://github.com/me",
			block)
	})

	t.Run("unknown platform falls back to raw key", func(t *testing.T) {
		block := socialLinksFor([]domain.SocialLink{
			{Platform: "mastodon", URL: "https://example.social/@me"},
		})
		assert.Contains(t, block, "mastodon: https://example.social/@me")
	})
}

func TestSEOParagraphFor(t *testing.T) {
	t.Run("keywords are deduped and joined", func(t *testing.T) {
		p := seoParagraphFor("guitar basics", []string{"chords", "Chords", "tuning"})
		assert.Contains(t, p, "guitar basics")
		assert.Contains(t, p, "chords, tuning")
		assert.Equal(t, 1, strings.Count(strings.ToLower(p), "chords"))
	})

	t.Run("at most eight unique keywords", func(t *testing.T) {
		keywords := []string{"kw1", "kw2", "kw3", "kw4", "kw5", "kw6", "kw7", "kw8", "kw9", "kw10"}
		p := seoParagraphFor("topic", keywords)
		assert.Contains(t, p, "kw1, kw2, kw3, kw4, kw5, kw6, kw7, kw8")
		assert.NotContains(t, p, "kw9")
	})

	t.Run("no keywords falls back to concept", func(t *testing.T) {
		p := seoParagraphFor("guitar basics", nil)
		assert.Contains(t, p, "we cover guitar basics")
	})
}

func TestHashtagsFor(t *testing.T) {
	t.Run("concept tag first then youtube and tutorial", func(t *testing.T) {
		tags := hashtagsFor("Guitar Basics", nil)
		assert.Equal(t, []string{"#guitarbasics", "#youtube", "#tutorial"}, tags)
	})

	t.Run("keyword tags follow the concept tag", func(t *testing.T) {
		tags := hashtagsFor("guitar", []string{"Power Chords", "tuning"})
		assert.Equal(t, []string{"#guitar", "#powerchords", "#tuning", "#youtube", "#tutorial"}, tags)
	})

	t.Run("at most five keyword tags", func(t *testing.T) {
		tags := hashtagsFor("topic", []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7"})
		assert.Equal(t,
			[]string{"#topic", "#k1", "#k2", "#k3", "#k4", "#k5", "#youtube", "#tutorial"},
			tags)
	})

	t.Run("never more than eight tags", func(t *testing.T) {
		tags := hashtagsFor("topic", []string{"k1", "k2", "k3", "k4", "k5", "k6"})
		assert.LessOrEqual(t, len(tags), 8)
	})

	t.Run("dedup is case-insensitive", func(t *testing.T) {
		tags := hashtagsFor("Guitar", []string{"guitar", "GUITAR"})
		assert.Equal(t, []string{"#guitar", "#youtube", "#tutorial"}, tags)
	})

	t.Run("punctuation is stripped before dedup", func(t *testing.T) {
		tags := hashtagsFor("rock-n-roll", []string{"rock n roll"})
		assert.Equal(t, []string{"#rocknroll", "#youtube", "#tutorial"}, tags)
	})

	t.Run("overlong tags are dropped", func(t *testing.T) {
		long := strings.Repeat("verylongkeyword", 4)
		tags := hashtagsFor("topic", []string{long, "ok"})
		assert.Equal(t, []string{"#topic", "#ok", "#youtube", "#tutorial"}, tags)
		for _, tag := range tags {
			assert.LessOrEqual(t, len(tag), 30)
		}
	})

	t.Run("tags are lowercased alphanumerics", func(t *testing.T) {
		tags := hashtagsFor("Go 1.24 Generics!", nil)
		require.NotEmpty(t, tags)
		assert.Equal(t, "#go124generics", tags[0])
	})
}
