package domain

// ContentStyle identifies the flavour of video being described.
// Every per-style lookup table in the composer keys off this type, and
// every table treats an unrecognised value as StyleTutorial in its
// default arm, so unknown styles degrade per generator rather than
// failing the request.
type ContentStyle string

const (
	// StyleTutorial is a how-to or walkthrough video. This is the
	// default style and the fallback for unknown values.
	StyleTutorial ContentStyle = "tutorial"
	// StyleReview is a product or service review.
	StyleReview ContentStyle = "review"
	// StyleVlog is a personal vlog.
	StyleVlog ContentStyle = "vlog"
	// StyleEntertainment is general entertainment content.
	StyleEntertainment ContentStyle = "entertainment"
	// StyleEducational is an explainer or lecture-style video.
	StyleEducational ContentStyle = "educational"
)

// ContentStyles lists the supported styles in catalog order.
func ContentStyles() []ContentStyle {
	return []ContentStyle{
		StyleTutorial,
		StyleReview,
		StyleVlog,
		StyleEntertainment,
		StyleEducational,
	}
}

// Known reports whether s is one of the supported styles.
func (s ContentStyle) Known() bool {
	switch s {
	case StyleTutorial, StyleReview, StyleVlog, StyleEntertainment, StyleEducational:
		return true
	default:
		return false
	}
}
