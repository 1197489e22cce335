package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

// Report styling. Palette follows the colours used across the project:
// purple accents, green/yellow/red for good/fair/bad.
var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7C3AED"))

	reportHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#06B6D4"))

	reportMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6C7086"))

	scoreGoodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A6E3A1"))

	scoreFairStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9E2AF"))

	scorePoorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8"))
)

// scoreStyle picks the badge colour for a rating band.
func scoreStyle(rating domain.Rating) lipgloss.Style {
	switch rating {
	case domain.RatingExcellent, domain.RatingGood:
		return scoreGoodStyle
	case domain.RatingFair:
		return scoreFairStyle
	default:
		return scorePoorStyle
	}
}

// renderReport renders a compose result for the terminal: the document
// itself, then the analysis summary and recommendations.
func renderReport(result *domain.Result) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render(result.Title))
	b.WriteString("\n")
	b.WriteString(reportMutedStyle.Render("concept: " + result.Concept))
	b.WriteString("\n\n")

	b.WriteString(result.Description)
	b.WriteString("\n\n")

	badge := fmt.Sprintf("SEO score: %d/100 (%s)", result.Analysis.SEOScore, result.Analysis.Rating)
	b.WriteString(scoreStyle(result.Analysis.Rating).Render(badge))
	b.WriteString("\n")
	b.WriteString(reportMutedStyle.Render(fmt.Sprintf(
		"%d characters, %d words, %d lines, keyword density %.2f%%",
		result.Analysis.TotalLength,
		result.Analysis.WordCount,
		result.Analysis.LineCount,
		result.Analysis.KeywordDensity,
	)))
	b.WriteString("\n")

	if len(result.Analysis.KeywordsFound) > 0 {
		found := make([]string, len(result.Analysis.KeywordsFound))
		for i, hit := range result.Analysis.KeywordsFound {
			found[i] = fmt.Sprintf("%s (%d)", hit.Keyword, hit.Count)
		}
		b.WriteString(reportMutedStyle.Render("keywords found: " + strings.Join(found, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(reportHeaderStyle.Render("Recommendations"))
	b.WriteString("\n")
	for _, rec := range result.Recommendations {
		b.WriteString("  - " + rec + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
