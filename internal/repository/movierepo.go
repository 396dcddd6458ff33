package repository

import (
	"context"

	"github.com/framehq/frame-api/internal/model"
)

// MovieFilter narrows and pages List results.
type MovieFilter struct {
	Genre string // exact match; empty means no filter
	Limit int
	Skip  int
}

// MovieRepository provides storage access for the movie catalog.
type MovieRepository interface {
	// Insert stores a new movie; the storage assigns ID, CreatedAt and ViewsCount.
	Insert(ctx context.Context, m *model.Movie) error
	// GetByID loads a movie by ID.
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	// List returns movies ordered by creation time descending.
	List(ctx context.Context, f MovieFilter) ([]model.Movie, error)
	// IncrementViews bumps the view counter by one, storage-side.
	IncrementViews(ctx context.Context, id int64) error
}
