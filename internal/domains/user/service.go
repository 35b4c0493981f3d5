package user

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes the user use cases. Each method is one request-response
// unit; errors are the sentinels in errors.go or wrapped storage faults.
type Service interface {
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
