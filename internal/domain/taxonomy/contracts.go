package taxonomy

import (
	"context"
	"errors"
)

// ErrDuplicateName is returned when a category or tag name already exists.
var ErrDuplicateName = errors.New("name already exists")

// CategoryService defines application-level category operations.
type CategoryService interface {
	// Create persists a new category. Duplicate names yield ErrDuplicateName.
	Create(ctx context.Context, category *Category) (*Category, error)

	// List retrieves categories, optionally filtered by a name substring.
	List(ctx context.Context, nameFilter string) ([]*Category, error)
}

// TagService defines application-level tag operations.
type TagService interface {
	// Create persists a new tag. Duplicate names yield ErrDuplicateName.
	Create(ctx context.Context, tag *Tag) (*Tag, error)

	// List retrieves tags, optionally filtered by a name substring.
	List(ctx context.Context, nameFilter string) ([]*Tag, error)
}

// CategoryRepository defines the interface for Category persistence
type CategoryRepository interface {
	// Create adds a new Category to the database
	Create(ctx context.Context, category *Category) error
	// List lists Categories, optionally filtered by a name substring
	List(ctx context.Context, nameFilter string) ([]*Category, error)
	// GetByID retrieves a Category from the database by ID
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
}

// TagRepository defines the interface for Tag persistence
type TagRepository interface {
	// Create adds a new Tag to the database
	Create(ctx context.Context, tag *Tag) error
	// List lists Tags, optionally filtered by a name substring
	List(ctx context.Context, nameFilter string) ([]*Tag, error)
	// GetByIDs retrieves the Tags matching the given IDs
	GetByIDs(ctx context.Context, tagIDs []uint) ([]*Tag, error)
}
