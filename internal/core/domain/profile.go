package domain

// Profile holds channel-wide defaults merged into every request before
// composition. Request-supplied values always win; profile values only
// fill gaps. All fields are optional.
type Profile struct {
	// ContentStyle is the default style when a request names none.
	ContentStyle ContentStyle

	// TargetAudience is the default audience when a request names none.
	TargetAudience string

	// Links are appended resources used when a request supplies none.
	Links []string

	// SocialLinks are the channel handles used when a request supplies
	// none, in configuration order.
	SocialLinks []SocialLink

	// IncludeHashtags overrides the hashtag-line default when set and
	// the request left the flag unset.
	IncludeHashtags *bool
}

// ApplyTo fills unset request fields from the profile.
func (p *Profile) ApplyTo(req *DescriptionRequest) {
	if p == nil {
		return
	}
	if req.ContentStyle == "" && p.ContentStyle != "" {
		req.ContentStyle = p.ContentStyle
	}
	if req.TargetAudience == "" && p.TargetAudience != "" {
		req.TargetAudience = p.TargetAudience
	}
	if len(req.Links) == 0 && len(p.Links) > 0 {
		req.Links = append([]string(nil), p.Links...)
	}
	if len(req.SocialLinks) == 0 && len(p.SocialLinks) > 0 {
		req.SocialLinks = append([]SocialLink(nil), p.SocialLinks...)
	}
	if req.IncludeHashtags == nil && p.IncludeHashtags != nil {
		v := *p.IncludeHashtags
		req.IncludeHashtags = &v
	}
}
