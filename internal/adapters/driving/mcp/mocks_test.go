package mcp

import (
	"context"

	"github.com/tubedraft/tubedraft-cli/internal/core/domain"
)

// mockDescriptionService is a hand-rolled driving.DescriptionService.
type mockDescriptionService struct {
	result  *domain.Result
	err     error
	lastReq domain.DescriptionRequest
}

func (m *mockDescriptionService) Compose(
	_ context.Context, req domain.DescriptionRequest,
) (*domain.Result, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.Result{Title: req.Title, Concept: req.Concept}, nil
}
