package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage channel-wide description defaults",
	Long: `Channel defaults are merged into every compose request: content
style, target audience, standing links and social handles. Values set
on a request always win over the profile.

Keys:
  profile.content_style      tutorial, review, vlog, entertainment, educational
  profile.target_audience    free text, e.g. "beginner guitarists"
  profile.links              comma-separated URLs
  profile.include_hashtags   true or false
  profile.social.<platform>  profile URL, e.g. profile.social.twitter`,
}

var profileGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one profile value, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileGet,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a profile value",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileSet,
}

func init() {
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileGet(cmd *cobra.Command, args []string) error {
	if profileStore == nil {
		return errors.New("profile store not configured")
	}

	if len(args) == 1 {
		val, ok := profileStore.Get(args[0])
		if !ok {
			return fmt.Errorf("key %q is not set", args[0])
		}
		cmd.Printf("%v\n", val)
		return nil
	}

	keys := profileStore.Keys()
	if len(keys) == 0 {
		cmd.Println("No profile values set.")
		cmd.Printf("Config file: %s\n", profileStore.Path())
		return nil
	}

	sort.Strings(keys)
	for _, key := range keys {
		val, _ := profileStore.Get(key)
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	if profileStore == nil {
		return errors.New("profile store not configured")
	}

	key, raw := args[0], args[1]
	if err := profileStore.Set(key, parseProfileValue(key, raw)); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

// parseProfileValue coerces the raw CLI string into the type the key
// expects: booleans for flags, comma-split slices for link lists,
// strings otherwise.
func parseProfileValue(key, raw string) any {
	switch key {
	case "profile.include_hashtags":
		return strings.EqualFold(raw, "true")
	case "profile.links":
		parts := strings.Split(raw, ",")
		links := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				links = append(links, trimmed)
			}
		}
		return links
	default:
		return raw
	}
}
