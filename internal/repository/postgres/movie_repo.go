package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/framehq/frame-api/internal/errs"
	"github.com/framehq/frame-api/internal/model"
	"github.com/framehq/frame-api/internal/repository"
)

// MovieRepo implements MovieRepository using PostgreSQL.
type MovieRepo struct{ db *DB }

// NewMovieRepo constructs a movie repository.
func NewMovieRepo(db *DB) *MovieRepo { return &MovieRepo{db: db} }

const movieColumns = `id, title, genre, duration, rating, description, poster_url, is_new, views_count, created_at, user_id`

// Insert stores a new movie row. The database assigns id, views_count and created_at.
func (r *MovieRepo) Insert(ctx context.Context, m *model.Movie) error {
	const q = `
INSERT INTO movies (title, genre, duration, rating, description, poster_url, is_new, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, views_count, created_at`
	err := r.db.Pool.QueryRow(ctx, q,
		m.Title, m.Genre, m.Duration, m.Rating, m.Description, m.PosterURL, m.IsNew, m.UserID).
		Scan(&m.ID, &m.ViewsCount, &m.CreatedAt)
	return mapStorageErr(err)
}

// GetByID selects a movie by id.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `
SELECT ` + movieColumns + `
FROM movies WHERE id=$1`
	var m model.Movie
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&m.ID, &m.Title, &m.Genre, &m.Duration, &m.Rating, &m.Description,
		&m.PosterURL, &m.IsNew, &m.ViewsCount, &m.CreatedAt, &m.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, mapStorageErr(err)
	}
	return &m, nil
}

// List selects movies ordered by creation time descending, optionally filtered
// to an exact genre.
func (r *MovieRepo) List(ctx context.Context, f repository.MovieFilter) ([]model.Movie, error) {
	const q = `
SELECT ` + movieColumns + `
FROM movies
WHERE ($1::text = '' OR genre = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.db.Pool.Query(ctx, q, f.Genre, f.Limit, f.Skip)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	defer rows.Close()

	out := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Genre, &m.Duration, &m.Rating, &m.Description,
			&m.PosterURL, &m.IsNew, &m.ViewsCount, &m.CreatedAt, &m.UserID); err != nil {
			return nil, mapStorageErr(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStorageErr(err)
	}
	return out, nil
}

// IncrementViews bumps views_count by one. The increment happens storage-side,
// so concurrent calls never lose updates.
func (r *MovieRepo) IncrementViews(ctx context.Context, id int64) error {
	const q = `UPDATE movies SET views_count = views_count + 1 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return mapStorageErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
