package app

import (
	"context"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/views"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
)

// viewService implements the ViewService interface for aggregate task views
type viewService struct {
	summaryRepo views.SummaryRepository
	logger      logger.Logger
}

// NewViewService creates a new instance of ViewService
func NewViewService(summaryRepo views.SummaryRepository, logger logger.Logger) (views.ViewService, error) {
	return &viewService{
		summaryRepo: summaryRepo,
		logger:      logger,
	}, nil
}

// CategorySummary counts tasks per category
func (s *viewService) CategorySummary(ctx context.Context) ([]*views.CountItem, error) {
	items, err := s.summaryRepo.CountTasksByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return items, nil
}

// StatusSummary counts tasks per status
func (s *viewService) StatusSummary(ctx context.Context) ([]*views.CountItem, error) {
	items, err := s.summaryRepo.CountTasksByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return items, nil
}

// TagSummary counts task associations per tag
func (s *viewService) TagSummary(ctx context.Context) ([]*views.CountItem, error) {
	items, err := s.summaryRepo.CountTasksByTag(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return items, nil
}
