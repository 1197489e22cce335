package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
	"github.com/tubedraft/tubedraft-cli/internal/core/ports/driven"
	"github.com/tubedraft/tubedraft-cli/internal/core/ports/driving"
	"github.com/tubedraft/tubedraft-cli/internal/logger"
)

// Ensure DescriptionService implements the interface.
var _ driving.DescriptionService = (*DescriptionService)(nil)

// DescriptionService runs the description composition pipeline:
// keyword extraction, section generation, composition, SEO analysis and
// recommendations. It holds no mutable state; every call allocates
// fresh data, so it is safe for concurrent use.
type DescriptionService struct {
	profileStore driven.ProfileStore
	now          func() time.Time
}

// NewDescriptionService creates a description service. The profile
// store is optional (can be nil); without it no channel defaults are
// merged into requests.
func NewDescriptionService(profileStore driven.ProfileStore) *DescriptionService {
	return &DescriptionService{
		profileStore: profileStore,
		now:          time.Now,
	}
}

// Compose builds, scores and packages a description for the request.
func (s *DescriptionService) Compose(
	_ context.Context, req domain.DescriptionRequest,
) (*domain.Result, error) {
	logger.Section("Description Composition")
	logger.Debug("Title: %q, Concept: %q, Style: %q", req.Title, req.Concept, req.ContentStyle)

	s.applyProfile(&req)
	applyDefaults(&req)

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Concept) == "" {
		return nil, fmt.Errorf("%w: concept is required", domain.ErrInvalidInput)
	}

	keywords := extractKeywords(req.Keywords)
	logger.Debug("Keywords: %d", len(keywords))

	c := composeDocument(req, keywords)
	logger.Debug("Document: %d bytes, hashtag line included: %t",
		len(c.document), req.HashtagsEnabled())

	analysis := analyzeDocument(c.document, keywords)
	logger.Info("SEO score: %d (%s)", analysis.SEOScore, analysis.Rating)

	recommendations := recommendFor(analysis)
	logger.Debug("Recommendations: %d", len(recommendations))

	return &domain.Result{
		Title:           req.Title,
		Concept:         req.Concept,
		GeneratedAt:     s.now().UTC(),
		Description:     c.document,
		Sections:        c.sections,
		Hashtags:        c.hashtags,
		Analysis:        analysis,
		Recommendations: recommendations,
		SEOTips:         seoTipsList(),
	}, nil
}

// applyProfile merges channel defaults into unset request fields.
// Profile read failures are logged and ignored; composition must not
// depend on configuration being readable.
func (s *DescriptionService) applyProfile(req *domain.DescriptionRequest) {
	if s.profileStore == nil {
		return
	}
	profile, err := s.profileStore.Profile()
	if err != nil {
		logger.Warn("Profile unavailable: %v", err)
		return
	}
	profile.ApplyTo(req)
}

// applyDefaults fills the documented request defaults: tutorial style
// and "general" audience. IncludeHashtags defaults through
// HashtagsEnabled, and an unknown non-empty style is kept as-is so each
// generator applies its own tutorial fallback.
func applyDefaults(req *domain.DescriptionRequest) {
	if req.ContentStyle == "" {
		req.ContentStyle = domain.StyleTutorial
	}
	if req.TargetAudience == "" {
		req.TargetAudience = "general"
	}
}
