package service

import (
	"context"
	"unicode/utf8"

	"github.com/framehq/frame-api/internal/errs"
	"github.com/framehq/frame-api/internal/model"
	"github.com/framehq/frame-api/internal/repository"
)

// maxListLimit caps a single page of the catalog.
const maxListLimit = 100

// MovieService defines catalog operations.
type MovieService interface {
	// List returns a page of movies, newest first, optionally filtered by genre.
	List(ctx context.Context, skip, limit int, genre string) ([]model.Movie, error)
	// Get loads one movie and records the view.
	Get(ctx context.Context, id int64) (*model.Movie, error)
	// Create validates and stores a movie owned by userID.
	Create(ctx context.Context, userID int64, in model.MovieInput) (*model.Movie, error)
}

type MovieServiceImpl struct {
	movies repository.MovieRepository
}

// NewMovieService constructs MovieService.
func NewMovieService(movies repository.MovieRepository) *MovieServiceImpl {
	return &MovieServiceImpl{movies: movies}
}

// List pages through the catalog ordered by creation time descending.
func (s *MovieServiceImpl) List(ctx context.Context, skip, limit int, genre string) ([]model.Movie, error) {
	if skip < 0 {
		return nil, errs.Validation("skip", "must be non-negative")
	}
	if limit <= 0 {
		return nil, errs.Validation("limit", "must be positive")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.movies.List(ctx, repository.MovieFilter{Genre: genre, Limit: limit, Skip: skip})
}

// Get fetches a movie and then bumps its view counter with a separate,
// explicit storage call. The returned record carries the counter as fetched.
func (s *MovieServiceImpl) Get(ctx context.Context, id int64) (*model.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.movies.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return m, nil
}

// Create validates the input against catalog field bounds and inserts the
// movie stamped with its creator.
func (s *MovieServiceImpl) Create(ctx context.Context, userID int64, in model.MovieInput) (*model.Movie, error) {
	if err := validateMovieInput(in); err != nil {
		return nil, err
	}
	m := &model.Movie{
		Title:       in.Title,
		Genre:       in.Genre,
		Duration:    in.Duration,
		Rating:      in.Rating,
		Description: in.Description,
		PosterURL:   in.PosterURL,
		IsNew:       in.IsNew,
		UserID:      userID,
	}
	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func validateMovieInput(in model.MovieInput) error {
	if n := utf8.RuneCountInString(in.Title); n < 1 || n > 200 {
		return errs.Validation("title", "must be 1-200 characters")
	}
	if n := utf8.RuneCountInString(in.Genre); n < 1 || n > 50 {
		return errs.Validation("genre", "must be 1-50 characters")
	}
	if in.Duration <= 0 {
		return errs.Validation("duration", "must be positive minutes")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return errs.Validation("rating", "must be between 0 and 5")
	}
	if utf8.RuneCountInString(in.Description) > 1000 {
		return errs.Validation("description", "must be at most 1000 characters")
	}
	return nil
}
