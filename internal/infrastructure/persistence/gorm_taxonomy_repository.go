package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence/models"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (taxonomy.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *taxonomy.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category %q: %w", category.Name, taxonomy.ErrDuplicateName)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	category.ID = model.ID
	r.logger.Info("Created category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) List(ctx context.Context, nameFilter string) ([]*taxonomy.Category, error) {
	var modelList []*models.CategoryModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CategoryModel{})

	if nameFilter != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+nameFilter+"%")
	}

	if err := dbQuery.Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	domainList := make([]*taxonomy.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*taxonomy.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %d not found", categoryID)
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return model.ToDomain(), nil
}

type gormTagRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTagRepository creates a new GORM-based TagRepository implementation
func NewGormTagRepository(db *gorm.DB, logger logger.Logger) (taxonomy.TagRepository, error) {
	return &gormTagRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTagRepository) Create(ctx context.Context, tag *taxonomy.Tag) error {
	if err := tag.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TagModel{}
	model.FromDomain(tag)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tag %q: %w", tag.Name, taxonomy.ErrDuplicateName)
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}

	tag.ID = model.ID
	r.logger.Info("Created tag with id ", tag.ID)
	return nil
}

func (r *gormTagRepository) List(ctx context.Context, nameFilter string) ([]*taxonomy.Tag, error) {
	var modelList []*models.TagModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TagModel{})

	if nameFilter != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+nameFilter+"%")
	}

	if err := dbQuery.Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}

	domainList := make([]*taxonomy.Tag, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTagRepository) GetByIDs(ctx context.Context, tagIDs []uint) ([]*taxonomy.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	var modelList []*models.TagModel
	if err := r.db.WithContext(ctx).Where("id IN ?", tagIDs).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}

	domainList := make([]*taxonomy.Tag, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// isUniqueViolation matches unique-constraint errors across SQLite and PostgreSQL.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
