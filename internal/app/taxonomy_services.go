package app

import (
	"context"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryRepo taxonomy.CategoryRepository
	logger       logger.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo taxonomy.CategoryRepository, logger logger.Logger) (taxonomy.CategoryService, error) {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}, nil
}

// Create persists a new category. Duplicate names yield ErrDuplicateName
func (s *categoryService) Create(ctx context.Context, category *taxonomy.Category) (*taxonomy.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Created category ", category.Name)
	return category, nil
}

// List retrieves categories, optionally filtered by a name substring
func (s *categoryService) List(ctx context.Context, nameFilter string) ([]*taxonomy.Category, error) {
	categories, err := s.categoryRepo.List(ctx, nameFilter)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return categories, nil
}

// tagService implements the TagService interface
type tagService struct {
	tagRepo taxonomy.TagRepository
	logger  logger.Logger
}

// NewTagService creates a new instance of TagService
func NewTagService(tagRepo taxonomy.TagRepository, logger logger.Logger) (taxonomy.TagService, error) {
	return &tagService{
		tagRepo: tagRepo,
		logger:  logger,
	}, nil
}

// Create persists a new tag. Duplicate names yield ErrDuplicateName
func (s *tagService) Create(ctx context.Context, tag *taxonomy.Tag) (*taxonomy.Tag, error) {
	if err := tag.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Created tag ", tag.Name)
	return tag, nil
}

// List retrieves tags, optionally filtered by a name substring
func (s *tagService) List(ctx context.Context, nameFilter string) ([]*taxonomy.Tag, error) {
	tags, err := s.tagRepo.List(ctx, nameFilter)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return tags, nil
}
