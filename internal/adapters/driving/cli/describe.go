package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

var (
	describeTitle       string
	describeConcept     string
	describeStyle       string
	describeAudience    string
	describeKeywords    []string
	describeSecondary   []string
	describeTimestamps  []string
	describeLinks       []string
	describeSocials     []string
	describeNoHashtags  bool
	describeRequestFile string
	describeJSON        bool
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Compose a description for one video",
	Long: `Composes an SEO-scored description from flags or a JSON request file.

Examples:
  # Flags only
  tubedraft describe --title "Learn Guitar Fast" --concept "guitar basics"

  # With keywords, chapters and links
  tubedraft describe --title "Learn Guitar Fast" --concept "guitar basics" \
    --keyword "guitar chords" --keyword tuning \
    --timestamp "00:00=Intro" --timestamp "02:30=First Chords" \
    --link https://example.com/tabs \
    --social twitter=https://twitter.com/me

  # From a request file (same JSON the MCP tool accepts)
  tubedraft describe --request video.json --json`,
	RunE: runDescribe,
}

func init() {
	flags := describeCmd.Flags()
	flags.StringVarP(&describeTitle, "title", "t", "", "video title (required unless --request)")
	flags.StringVarP(&describeConcept, "concept", "c", "", "video topic (required unless --request)")
	flags.StringVarP(&describeStyle, "style", "s", "", "content style: tutorial, review, vlog, entertainment, educational")
	flags.StringVarP(&describeAudience, "audience", "a", "", "target audience")
	flags.StringArrayVarP(&describeKeywords, "keyword", "k", nil, "primary keyword (repeatable)")
	flags.StringArrayVar(&describeSecondary, "secondary-keyword", nil, "secondary keyword (repeatable)")
	flags.StringArrayVar(&describeTimestamps, "timestamp", nil, "chapter as TIME=LABEL (repeatable)")
	flags.StringArrayVarP(&describeLinks, "link", "l", nil, "resource link (repeatable)")
	flags.StringArrayVar(&describeSocials, "social", nil, "social handle as platform=url (repeatable)")
	flags.BoolVar(&describeNoHashtags, "no-hashtags", false, "leave the hashtag line out of the description")
	flags.StringVarP(&describeRequestFile, "request", "r", "", "JSON request file; flags override its fields")
	flags.BoolVar(&describeJSON, "json", false, "output the full result as JSON")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	if descriptionService == nil {
		return errors.New("description service not configured")
	}

	req, err := buildDescribeRequest()
	if err != nil {
		return err
	}

	result, err := descriptionService.Compose(context.Background(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (use --title and --concept, or --request)", err)
		}
		return fmt.Errorf("compose failed: %w", err)
	}

	if describeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(renderReport(result))
	return nil
}

// buildDescribeRequest assembles the domain request from the request
// file (if any) overlaid with flags. Flags always win over the file.
func buildDescribeRequest() (domain.DescriptionRequest, error) {
	var req domain.DescriptionRequest

	if describeRequestFile != "" {
		data, err := os.ReadFile(describeRequestFile)
		if err != nil {
			return req, fmt.Errorf("reading request file: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parsing request file: %w", err)
		}
	}

	if describeTitle != "" {
		req.Title = describeTitle
	}
	if describeConcept != "" {
		req.Concept = describeConcept
	}
	if describeStyle != "" {
		req.ContentStyle = domain.ContentStyle(describeStyle)
	}
	if describeAudience != "" {
		req.TargetAudience = describeAudience
	}
	if len(describeLinks) > 0 {
		req.Links = describeLinks
	}

	if len(describeKeywords) > 0 || len(describeSecondary) > 0 {
		set := &domain.KeywordSet{}
		for _, kw := range describeKeywords {
			set.Recommended.Primary = append(set.Recommended.Primary, domain.Keyword{Keyword: kw})
		}
		for _, kw := range describeSecondary {
			set.Recommended.Secondary = append(set.Recommended.Secondary, domain.Keyword{Keyword: kw})
		}
		req.Keywords = set
	}

	if len(describeTimestamps) > 0 {
		req.Timestamps = nil
		for _, raw := range describeTimestamps {
			ts, err := parseTimestampFlag(raw)
			if err != nil {
				return req, err
			}
			req.Timestamps = append(req.Timestamps, ts)
		}
	}

	if len(describeSocials) > 0 {
		req.SocialLinks = nil
		for _, raw := range describeSocials {
			link, err := parseSocialFlag(raw)
			if err != nil {
				return req, err
			}
			req.SocialLinks = append(req.SocialLinks, link)
		}
	}

	if describeNoHashtags {
		off := false
		req.IncludeHashtags = &off
	}

	return req, nil
}

// parseTimestampFlag splits "00:00=Intro" into a Timestamp.
func parseTimestampFlag(raw string) (domain.Timestamp, error) {
	parts := strings.SplitN(raw, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.Timestamp{}, fmt.Errorf("invalid --timestamp %q: expected TIME=LABEL", raw)
	}
	return domain.Timestamp{Time: parts[0], Label: parts[1]}, nil
}

// parseSocialFlag splits "twitter=https://twitter.com/me" into a SocialLink.
func parseSocialFlag(raw string) (domain.SocialLink, error) {
	parts := strings.SplitN(raw, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.SocialLink{}, fmt.Errorf("invalid --social %q: expected platform=url", raw)
	}
	return domain.SocialLink{Platform: strings.ToLower(parts[0]), URL: parts[1]}, nil
}
