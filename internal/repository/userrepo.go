// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/framehq/frame-api/internal/model"
)

// UserRepository provides storage access for user accounts.
type UserRepository interface {
	// Create inserts a new user; the storage assigns ID and CreatedAt.
	Create(ctx context.Context, u *model.User) error
	// GetActiveByID loads an active user by ID.
	GetActiveByID(ctx context.Context, id int64) (*model.User, error)
	// GetActiveByEmail loads an active user by email.
	GetActiveByEmail(ctx context.Context, email string) (*model.User, error)
}
