package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/framehq/frame-api/internal/errs"
	"github.com/framehq/frame-api/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row. The database assigns id, is_active and created_at.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (email, username, password_hash)
VALUES ($1, $2, $3)
RETURNING id, is_active, created_at`
	err := r.db.Pool.QueryRow(ctx, q, u.Email, u.Username, u.PasswordHash).
		Scan(&u.ID, &u.IsActive, &u.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return mapStorageErr(err)
}

// GetActiveByID selects an active user by id. Deactivated users are
// indistinguishable from missing ones.
func (r *UserRepo) GetActiveByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
SELECT id, email, username, password_hash, is_active, created_at
FROM users WHERE id=$1 AND is_active`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id))
}

// GetActiveByEmail selects an active user by email.
func (r *UserRepo) GetActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, email, username, password_hash, is_active, created_at
FROM users WHERE email=$1 AND is_active`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, email))
}

func (r *UserRepo) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, mapStorageErr(err)
	}
	return &u, nil
}
