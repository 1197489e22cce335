package file

import (
	"sort"
	"strings"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
	"github.com/tubedraft/tubedraft-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ProfileStore = (*ConfigStore)(nil)

// Profile keys in the config file.
const (
	keyContentStyle    = "profile.content_style"
	keyTargetAudience  = "profile.target_audience"
	keyLinks           = "profile.links"
	keyIncludeHashtags = "profile.include_hashtags"
	socialPrefix       = "profile.social."
)

// Profile builds the channel defaults from the stored configuration.
// Social handles are ordered by platform key; TOML tables carry no
// reliable order once flattened.
func (s *ConfigStore) Profile() (domain.Profile, error) {
	profile := domain.Profile{
		ContentStyle:   domain.ContentStyle(s.GetString(keyContentStyle)),
		TargetAudience: s.GetString(keyTargetAudience),
		Links:          s.GetStringSlice(keyLinks),
	}

	if v, ok := s.GetBool(keyIncludeHashtags); ok {
		profile.IncludeHashtags = &v
	}

	var platforms []string
	for _, key := range s.Keys() {
		if strings.HasPrefix(key, socialPrefix) {
			platforms = append(platforms, strings.TrimPrefix(key, socialPrefix))
		}
	}
	sort.Strings(platforms)
	for _, platform := range platforms {
		url := s.GetString(socialPrefix + platform)
		if url == "" {
			continue
		}
		profile.SocialLinks = append(profile.SocialLinks, domain.SocialLink{
			Platform: platform,
			URL:      url,
		})
	}

	return profile, nil
}
