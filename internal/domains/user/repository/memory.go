package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
)

// MemoryUserRepository is an in-memory user.Repository for tests and local
// runs. Entities are cloned on the way in and out so callers cannot mutate
// stored state through a shared pointer.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*user.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]*user.User)}
}

func (r *MemoryUserRepository) FindAll(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		if u.IsDeleted() {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedDate().Before(out[j].CreatedDate())
	})

	return out, nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok || u.IsDeleted() {
		return nil, user.ErrUserNotFound
	}

	return cloneUser(u), nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email() == email && !u.IsDeleted() {
			return cloneUser(u), nil
		}
	}

	return nil, user.ErrUserNotFound
}

func (r *MemoryUserRepository) Save(_ context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness holds among live rows only, matching the partial index.
	for id, existing := range r.users {
		if id != u.ID() && existing.Email() == u.Email() && !existing.IsDeleted() && !u.IsDeleted() {
			return nil, user.ErrEmailTaken
		}
	}

	r.users[u.ID()] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.IsDeleted() {
		return nil
	}

	u.MarkAsDeleted()
	return nil
}

// FindByIDIncludeDeleted bypasses the soft-delete filter. It exists for
// inspection in tests and is not part of the port.
func (r *MemoryUserRepository) FindByIDIncludeDeleted(id uuid.UUID) (*user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}

	return cloneUser(u), true
}

func cloneUser(u *user.User) *user.User {
	var photo *string
	if p := u.Photo(); p != nil {
		v := *p
		photo = &v
	}

	return user.Reconstitute(
		u.ID(), u.Name(), u.Email(), u.Document(), u.Contact(),
		photo, u.IsDeleted(), u.CreatedDate(), u.UpdatedDate(),
	)
}
