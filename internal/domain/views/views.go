package views

import "context"

// CountItem is a single key/count pair in a summary view
type CountItem struct {
	Key   string
	Count int64
}

// ViewService defines read-only aggregate views over tasks.
type ViewService interface {
	// CategorySummary counts tasks per category; categories without tasks
	// appear with a zero count and uncategorized tasks are not included.
	CategorySummary(ctx context.Context) ([]*CountItem, error)

	// StatusSummary counts tasks per status.
	StatusSummary(ctx context.Context) ([]*CountItem, error)

	// TagSummary counts task associations per tag; tags without tasks appear
	// with a zero count.
	TagSummary(ctx context.Context) ([]*CountItem, error)
}

// SummaryRepository defines the aggregate queries backing the views.
type SummaryRepository interface {
	// CountTasksByCategory returns task counts grouped by category
	CountTasksByCategory(ctx context.Context) ([]*CountItem, error)
	// CountTasksByStatus returns task counts grouped by status
	CountTasksByStatus(ctx context.Context) ([]*CountItem, error)
	// CountTasksByTag returns task association counts grouped by tag
	CountTasksByTag(ctx context.Context) ([]*CountItem, error)
}
