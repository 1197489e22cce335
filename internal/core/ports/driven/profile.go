package driven

import "github.com/tubedraft/tubedraft-cli/internal/core/domain"

// ProfileStore supplies channel-wide request defaults.
type ProfileStore interface {
	// Profile returns the configured defaults. A missing configuration
	// file yields an empty profile, not an error.
	Profile() (domain.Profile, error)
}
