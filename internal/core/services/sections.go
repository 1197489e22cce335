package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

// Section generators. Each is a pure function of its declared inputs.
// Per-style tables are expressed as switch statements whose default arm
// reuses the tutorial variant, so an unknown style falls back per
// generator rather than globally.

// hookFor returns the title followed by the style-specific opening line.
func hookFor(style domain.ContentStyle, title, concept string) string {
	var opener string
	switch style {
	case domain.StyleReview:
		opener = fmt.Sprintf("Is %s worth your time and money? Watch this honest review before you decide!", concept)
	case domain.StyleVlog:
		opener = fmt.Sprintf("Join me as I explore %s and share my experience with you!", concept)
	case domain.StyleEntertainment:
		opener = fmt.Sprintf("Get ready for an amazing %s experience that you won't want to miss!", concept)
	case domain.StyleEducational:
		opener = fmt.Sprintf("Want to understand %s? This video breaks down everything in simple terms!", concept)
	default:
		opener = fmt.Sprintf("In this comprehensive %s tutorial, you'll learn everything you need to know to get started and beyond!", concept)
	}
	return title + "\n\n" + opener
}

// overviewFor returns the audience-aware summary with fixed bullets.
func overviewFor(style domain.ContentStyle, targetAudience string) string {
	var b strings.Builder
	if targetAudience != "general" && targetAudience != "" {
		b.WriteString("Perfect for " + targetAudience + ", this ")
	} else {
		b.WriteString("This ")
	}

	switch style {
	case domain.StyleTutorial:
		b.WriteString("step-by-step guide")
	case domain.StyleReview:
		b.WriteString("in-depth review")
	case domain.StyleVlog:
		b.WriteString("personal vlog")
	case domain.StyleEducational:
		b.WriteString("educational breakdown")
	default:
		b.WriteString("video")
	}

	b.WriteString(" covers:\n")
	b.WriteString("• Everything you need to know about the topic\n")
	b.WriteString("• Practical tips and real-world applications\n")
	b.WriteString("• Common mistakes and how to avoid them\n")
	b.WriteString("• Expert insights and best practices")
	return b.String()
}

// keyPointsFor returns the "WHAT YOU'LL LEARN" block. Only tutorial,
// review and educational have distinct lists; other styles reuse the
// tutorial list.
func keyPointsFor(style domain.ContentStyle) string {
	var points []string
	switch style {
	case domain.StyleReview:
		points = []string{
			"Honest pros and cons breakdown",
			"Real-world performance results",
			"Value for money assessment",
			"Comparison with alternatives",
			"Final verdict and recommendation",
		}
	case domain.StyleEducational:
		points = []string{
			"Key concepts explained simply",
			"The theory behind how it works",
			"Practical examples and applications",
			"Common misconceptions debunked",
			"Resources for deeper learning",
		}
	default:
		points = []string{
			"The fundamentals and core concepts",
			"Step-by-step implementation",
			"Pro tips to speed up your progress",
			"Troubleshooting common issues",
			"Next steps to keep improving",
		}
	}

	var b strings.Builder
	b.WriteString("WHAT YOU'LL LEARN:\n")
	for i, p := range points {
		b.WriteString("• " + p)
		if i < len(points)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// placeholderNote trails every generated timestamp block so creators
// remember to replace the placeholders.
const placeholderNote = "(Update with actual timestamps after editing)"

// timestampsFor renders supplied chapters, or a per-style placeholder
// set plus a trailing note when the caller supplied none.
func timestampsFor(style domain.ContentStyle, supplied []domain.Timestamp) string {
	var b strings.Builder
	b.WriteString("TIMESTAMPS:\n")

	if len(supplied) > 0 {
		for i, ts := range supplied {
			b.WriteString(ts.Time + " - " + ts.Label)
			if i < len(supplied)-1 {
				b.WriteString("\n")
			}
		}
		return b.String()
	}

	var placeholders []domain.Timestamp
	switch style {
	case domain.StyleReview:
		placeholders = []domain.Timestamp{
			{Time: "00:00", Label: "Introduction"},
			{Time: "01:00", Label: "First Impressions"},
			{Time: "04:00", Label: "Detailed Review"},
			{Time: "10:00", Label: "Pros & Cons"},
			{Time: "13:00", Label: "Final Verdict"},
		}
	case domain.StyleEducational:
		placeholders = []domain.Timestamp{
			{Time: "00:00", Label: "Introduction"},
			{Time: "01:00", Label: "Background & Context"},
			{Time: "04:00", Label: "Core Concepts"},
			{Time: "10:00", Label: "Real-World Examples"},
			{Time: "14:00", Label: "Summary"},
		}
	default:
		placeholders = []domain.Timestamp{
			{Time: "00:00", Label: "Introduction"},
			{Time: "01:30", Label: "Getting Started"},
			{Time: "05:00", Label: "Main Tutorial Content"},
			{Time: "12:00", Label: "Advanced Tips"},
			{Time: "15:00", Label: "Recap & Next Steps"},
		}
	}

	for _, ts := range placeholders {
		b.WriteString(ts.Time + " - " + ts.Label + "\n")
	}
	b.WriteString(placeholderNote)
	return b.String()
}

// callToAction is constant regardless of input.
func callToAction() string {
	return strings.Join([]string{
		"━━━━━━━━━━━━━━━━━━━━━━━━",
		"👍 LIKE this video if you found it helpful!",
		"🔔 SUBSCRIBE and hit the bell for more content like this!",
		"💬 COMMENT below with your questions or thoughts!",
		"📤 SHARE this video with someone who needs to see it!",
	}, "\n")
}

// linksFor renders resource links verbatim, one per line. Returns the
// empty string when no links were supplied so the composer omits the
// section entirely.
func linksFor(links []string) string {
	if len(links) == 0 {
		return ""
	}
	return "RESOURCES & LINKS:\n" + strings.Join(links, "\n")
}

// platformNames maps known platform keys to display labels. Unknown
// platforms fall back to the raw key.
var platformNames = map[string]string{
	"twitter":   "Twitter",
	"instagram": "Instagram",
	"tiktok":    "TikTok",
	"discord":   "Discord",
	"website":   "Website",
	"github":    "GitHub",
	"linkedin":  "LinkedIn",
	"facebook":  "Facebook",
}

// socialLinksFor renders the connect block in slice order, or the empty
// string when no handles were supplied.
func socialLinksFor(socials []domain.SocialLink) string {
	if len(socials) == 0 {
		return ""
	}

	lines := make([]string, 0, len(socials)+1)
	lines = append(lines, "CONNECT WITH ME:")
	for _, s := range socials {
		name, ok := platformNames[s.Platform]
		if !ok {
			name = s.Platform
		}
		lines = append(lines, name+": "+s.URL)
	}
	return strings.Join(lines, "\n")
}

// maxSEOKeywords caps how many unique keywords the SEO paragraph names.
const maxSEOKeywords = 8

// seoParagraphFor embeds the first unique keywords into a fixed closing
// sentence. With no keywords the concept stands in for the list.
func seoParagraphFor(concept string, keywords []string) string {
	unique := domain.NewOrderedSet(domain.FoldKey)
	for _, kw := range keywords {
		if unique.Len() == maxSEOKeywords {
			break
		}
		unique.Add(kw)
	}

	topics := strings.Join(unique.Items(), ", ")
	if topics == "" {
		topics = concept
	}

	return fmt.Sprintf(
		"In this video about %s, we cover %s. Whether you're just starting out or looking to level up, this content is designed to help you succeed.",
		concept, topics,
	)
}

const (
	// maxHashtags caps the tag list.
	maxHashtags = 8
	// maxHashtagLength drops overlong tags.
	maxHashtagLength = 30
	// maxKeywordHashtags caps keyword-derived tags.
	maxKeywordHashtags = 5
)

// hashtagFor turns free text into a tag: lowercase, letters and digits
// only, "#" prefix. Returns "" when nothing survives.
func hashtagFor(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

// hashtagsFor builds the tag list: the concept tag, then up to five
// keyword tags, then #youtube and #tutorial, deduped case-insensitively
// and capped at maxHashtags entries of at most maxHashtagLength runes.
func hashtagsFor(concept string, keywords []string) []string {
	tags := domain.NewOrderedSet(domain.FoldKey)
	add := func(text string) bool {
		tag := hashtagFor(text)
		if tag == "" || len([]rune(tag)) > maxHashtagLength {
			return false
		}
		return tags.Add(tag)
	}

	add(concept)

	added := 0
	for _, kw := range keywords {
		if added == maxKeywordHashtags {
			break
		}
		if add(kw) {
			added++
		}
	}

	add("youtube")
	add("tutorial")

	return tags.Take(maxHashtags)
}
