package searchfor

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes the report use cases plus the two relation-scoped
// listings the port already provides.
type Service interface {
	Create(ctx context.Context, req *CreateSearchForRequest) (*SearchFor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SearchFor, error)
	GetAll(ctx context.Context) ([]*SearchFor, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*SearchFor, error)
	GetByType(ctx context.Context, t Type) ([]*SearchFor, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateSearchForRequest) (*SearchFor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
