package driving

import (
	"context"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

// DescriptionService composes and scores video descriptions.
type DescriptionService interface {
	// Compose builds a description for the request, analyses it against
	// the SEO rubric and returns the full result. It fails with
	// domain.ErrInvalidInput when title or concept is missing.
	Compose(ctx context.Context, req domain.DescriptionRequest) (*domain.Result, error)
}
