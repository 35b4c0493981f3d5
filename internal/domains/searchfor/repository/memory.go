package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor"
	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
)

// MemorySearchForRepository is an in-memory searchfor.Repository for tests
// and local runs. It shares a MemoryUserRepository-style contract: finders
// skip soft-deleted reports, entities are cloned at the boundary.
type MemorySearchForRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*searchfor.SearchFor
}

func NewMemorySearchForRepository() *MemorySearchForRepository {
	return &MemorySearchForRepository{items: make(map[uuid.UUID]*searchfor.SearchFor)}
}

func (r *MemorySearchForRepository) FindAll(_ context.Context) ([]*searchfor.SearchFor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(*searchfor.SearchFor) bool { return true }), nil
}

func (r *MemorySearchForRepository) FindByID(_ context.Context, id uuid.UUID) (*searchfor.SearchFor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok || s.IsDeleted() {
		return nil, searchfor.ErrSearchForNotFound
	}

	return cloneSearchFor(s), nil
}

func (r *MemorySearchForRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*searchfor.SearchFor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(s *searchfor.SearchFor) bool {
		return s.Reporter() != nil && s.Reporter().ID() == userID
	}), nil
}

func (r *MemorySearchForRepository) FindByType(_ context.Context, t searchfor.Type) ([]*searchfor.SearchFor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(s *searchfor.SearchFor) bool {
		return s.Type() == t
	}), nil
}

func (r *MemorySearchForRepository) Save(_ context.Context, s *searchfor.SearchFor) (*searchfor.SearchFor, error) {
	if s.Reporter() == nil {
		return nil, searchfor.ErrReporterNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID()] = cloneSearchFor(s)
	return cloneSearchFor(s), nil
}

func (r *MemorySearchForRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok || s.IsDeleted() {
		return nil
	}

	s.MarkAsDeleted()
	return nil
}

// FindByIDIncludeDeleted bypasses the soft-delete filter, for inspection in
// tests only.
func (r *MemorySearchForRepository) FindByIDIncludeDeleted(id uuid.UUID) (*searchfor.SearchFor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return nil, false
	}

	return cloneSearchFor(s), true
}

// collect must be called with at least the read lock held.
func (r *MemorySearchForRepository) collect(match func(*searchfor.SearchFor) bool) []*searchfor.SearchFor {
	out := make([]*searchfor.SearchFor, 0)
	for _, s := range r.items {
		if s.IsDeleted() || !match(s) {
			continue
		}
		out = append(out, cloneSearchFor(s))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedDate().Before(out[j].CreatedDate())
	})

	return out
}

func cloneSearchFor(s *searchfor.SearchFor) *searchfor.SearchFor {
	var photo *string
	if p := s.RecentPhoto(); p != nil {
		v := *p
		photo = &v
	}

	var reporter *user.User
	if rep := s.Reporter(); rep != nil {
		var repPhoto *string
		if p := rep.Photo(); p != nil {
			v := *p
			repPhoto = &v
		}
		reporter = user.Reconstitute(
			rep.ID(), rep.Name(), rep.Email(), rep.Document(), rep.Contact(),
			repPhoto, rep.IsDeleted(), rep.CreatedDate(), rep.UpdatedDate(),
		)
	}

	return searchfor.Reconstitute(
		s.ID(), s.Type(), s.Name(), s.BirthdayYear(), s.LastLocation(),
		s.LastSeenDateTime(), s.Description(), reporter, s.Contact(), photo,
		s.IsDeleted(), s.CreatedDate(), s.UpdatedDate(),
	)
}
