package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for users. Every finder excludes
// soft-deleted rows; that filter lives in the adapter, not in the services.
type Repository interface {
	// FindAll returns all non-deleted users.
	FindAll(ctx context.Context) ([]*User, error)

	// FindByID returns ErrUserNotFound when no non-deleted user matches.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail returns ErrUserNotFound when no non-deleted user matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Save inserts or updates by id and returns the persisted state.
	Save(ctx context.Context, u *User) (*User, error)

	// Delete soft-deletes the user. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
