package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
	"github.com/samuel-prates/find-my-buddy-api/pkg/logger"
)

type userServiceImpl struct {
	repository user.Repository
}

// NewUserService wires the use cases to a repository. Tests pass the
// in-memory adapter, the app passes postgres.
func NewUserService(repo user.Repository) user.Service {
	return &userServiceImpl{repository: repo}
}

// Create registers a new user after checking that no active user already
// owns the email. The check-then-save pair is not atomic; the partial
// unique index on active emails is the real guarantee and the adapter maps
// its violation to ErrEmailTaken as well.
func (s *userServiceImpl) Create(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if req == nil {
		return nil, fmt.Errorf("create user: invalid request")
	}

	existing, err := s.repository.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		logger.Error("Create: email lookup failed", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	if existing != nil {
		return nil, user.ErrEmailTaken
	}

	// An empty-string photo collapses to "no photo".
	photo := req.Photo
	if photo != nil && *photo == "" {
		photo = nil
	}

	entity := user.New(req.Name, req.Email, req.Document, req.Contact, photo)

	created, err := s.repository.Save(ctx, entity)
	if err != nil {
		logger.Error("Create: save failed", err)
		if user.IsConflict(err) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user created", map[string]interface{}{"user_id": created.ID().String()})
	return created, nil
}

func (s *userServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if id == uuid.Nil {
		return nil, user.ErrUserNotFound
	}

	entity, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if user.IsNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("GetByID: lookup failed", err)
		return nil, fmt.Errorf("get user: %w", err)
	}

	return entity, nil
}

func (s *userServiceImpl) GetAll(ctx context.Context) ([]*user.User, error) {
	entities, err := s.repository.FindAll(ctx)
	if err != nil {
		logger.Error("GetAll: lookup failed", err)
		return nil, fmt.Errorf("get users: %w", err)
	}
	return entities, nil
}

// Update applies only the fields present in the request. A non-photo field
// counts as present when it is both in the payload and non-empty; Photo
// counts as present when the key exists, so {"photo": null} clears it while
// an omitted key changes nothing.
func (s *userServiceImpl) Update(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	if req == nil {
		return nil, fmt.Errorf("update user: invalid request")
	}

	entity, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if user.IsNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("Update: lookup failed", err)
		return nil, fmt.Errorf("update user: %w", err)
	}

	if req.Email != nil && *req.Email != "" && *req.Email != entity.Email() {
		existing, err := s.repository.FindByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			logger.Error("Update: email lookup failed", err)
			return nil, fmt.Errorf("update user: %w", err)
		}
		if existing != nil {
			return nil, user.ErrEmailTaken
		}
		entity.UpdateEmail(*req.Email)
	}

	if req.Name != nil && *req.Name != "" {
		entity.UpdateName(*req.Name)
	}

	if req.Document != nil && *req.Document != "" {
		entity.UpdateDocument(*req.Document)
	}

	if req.Contact != nil && *req.Contact != "" {
		entity.UpdateContact(*req.Contact)
	}

	if req.Photo.Set {
		entity.UpdatePhoto(req.Photo.Value)
	}

	updated, err := s.repository.Save(ctx, entity)
	if err != nil {
		logger.Error("Update: save failed", err)
		if user.IsConflict(err) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return updated, nil
}

// Delete soft-deletes the user. Deleting an id that does not exist is a
// successful no-op so the operation stays idempotent.
func (s *userServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if user.IsNotFound(err) {
			return nil
		}
		logger.Error("Delete: lookup failed", err)
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		logger.Error("Delete: repository delete failed", err)
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Info("user deleted", map[string]interface{}{"user_id": id.String()})
	return nil
}
