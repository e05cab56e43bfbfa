package persistence

import (
	"context"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/views"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSummaryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSummaryRepository creates a new GORM-based SummaryRepository implementation
func NewGormSummaryRepository(db *gorm.DB, logger logger.Logger) (views.SummaryRepository, error) {
	return &gormSummaryRepository{
		db:     db,
		logger: logger,
	}, nil
}

type countRow struct {
	Key   string
	Count int64
}

func (r *gormSummaryRepository) CountTasksByCategory(ctx context.Context) ([]*views.CountItem, error) {
	return r.scanCounts(ctx, `
		SELECT categories.name AS key, COUNT(tasks.id) AS count
		FROM categories
		LEFT JOIN tasks ON tasks.category_id = categories.id
		GROUP BY categories.id, categories.name
		ORDER BY categories.name`)
}

func (r *gormSummaryRepository) CountTasksByStatus(ctx context.Context) ([]*views.CountItem, error) {
	return r.scanCounts(ctx, `
		SELECT status AS key, COUNT(id) AS count
		FROM tasks
		GROUP BY status
		ORDER BY status`)
}

func (r *gormSummaryRepository) CountTasksByTag(ctx context.Context) ([]*views.CountItem, error) {
	return r.scanCounts(ctx, `
		SELECT tags.name AS key, COUNT(task_tags.task_id) AS count
		FROM tags
		LEFT JOIN task_tags ON task_tags.tag_id = tags.id
		GROUP BY tags.id, tags.name
		ORDER BY tags.name`)
}

func (r *gormSummaryRepository) scanCounts(ctx context.Context, query string) ([]*views.CountItem, error) {
	var rows []countRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run summary query: %w", err)
	}

	items := make([]*views.CountItem, len(rows))
	for i, row := range rows {
		items[i] = &views.CountItem{Key: row.Key, Count: row.Count}
	}
	return items, nil
}
