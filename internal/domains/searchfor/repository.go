package searchfor

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for reports. Every finder excludes
// soft-deleted rows and loads the reporter relation; both are adapter
// responsibilities, not service ones.
type Repository interface {
	// FindAll returns all non-deleted reports.
	FindAll(ctx context.Context) ([]*SearchFor, error)

	// FindByID returns ErrSearchForNotFound when no non-deleted report
	// matches.
	FindByID(ctx context.Context, id uuid.UUID) (*SearchFor, error)

	// FindByUser returns the non-deleted reports filed by one user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*SearchFor, error)

	// FindByType returns the non-deleted reports of one type.
	FindByType(ctx context.Context, t Type) ([]*SearchFor, error)

	// Save inserts or updates by id and returns the persisted state. If
	// the referenced user row cannot be resolved the adapter returns
	// ErrReporterNotFound.
	Save(ctx context.Context, s *SearchFor) (*SearchFor, error)

	// Delete soft-deletes the report. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
