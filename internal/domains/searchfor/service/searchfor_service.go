package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor"
	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
	"github.com/samuel-prates/find-my-buddy-api/pkg/logger"
)

type searchForServiceImpl struct {
	repository     searchfor.Repository
	userRepository user.Repository
}

// NewSearchForService wires the report use cases to their repositories.
// The user repository is only consulted to resolve the reporter at create
// time.
func NewSearchForService(repo searchfor.Repository, userRepo user.Repository) searchfor.Service {
	return &searchForServiceImpl{
		repository:     repo,
		userRepository: userRepo,
	}
}

// Create files a new report. The reporter must exist; the resolved entity
// is attached to the report before saving. The adapter still guards the
// reference with the foreign key, so a user deleted between check and save
// surfaces as ErrReporterNotFound rather than a silent orphan.
func (s *searchForServiceImpl) Create(ctx context.Context, req *searchfor.CreateSearchForRequest) (*searchfor.SearchFor, error) {
	if req == nil {
		return nil, fmt.Errorf("create search item: invalid request")
	}

	reporter, err := s.userRepository.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, searchfor.ErrReporterNotFound
		}
		logger.Error("Create: reporter lookup failed", err)
		return nil, fmt.Errorf("create search item: %w", err)
	}

	// An empty-string photo collapses to "no photo".
	photo := req.RecentPhoto
	if photo != nil && *photo == "" {
		photo = nil
	}

	entity := searchfor.New(
		req.Type,
		req.Name,
		req.BirthdayYear,
		req.LastLocation,
		req.LastSeenDateTime,
		req.Description,
		reporter,
		req.Contact,
		photo,
	)

	created, err := s.repository.Save(ctx, entity)
	if err != nil {
		logger.Error("Create: save failed", err)
		if errors.Is(err, searchfor.ErrReporterNotFound) {
			return nil, searchfor.ErrReporterNotFound
		}
		return nil, fmt.Errorf("create search item: %w", err)
	}

	logger.Info("search item created", map[string]interface{}{
		"search_for_id": created.ID().String(),
		"type":          created.Type().String(),
	})
	return created, nil
}

func (s *searchForServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*searchfor.SearchFor, error) {
	if id == uuid.Nil {
		return nil, searchfor.ErrSearchForNotFound
	}

	entity, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, searchfor.ErrSearchForNotFound) {
			return nil, searchfor.ErrSearchForNotFound
		}
		logger.Error("GetByID: lookup failed", err)
		return nil, fmt.Errorf("get search item: %w", err)
	}

	return entity, nil
}

func (s *searchForServiceImpl) GetAll(ctx context.Context) ([]*searchfor.SearchFor, error) {
	entities, err := s.repository.FindAll(ctx)
	if err != nil {
		logger.Error("GetAll: lookup failed", err)
		return nil, fmt.Errorf("get search items: %w", err)
	}
	return entities, nil
}

func (s *searchForServiceImpl) GetByUser(ctx context.Context, userID uuid.UUID) ([]*searchfor.SearchFor, error) {
	entities, err := s.repository.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("GetByUser: lookup failed", err)
		return nil, fmt.Errorf("get search items: %w", err)
	}
	return entities, nil
}

func (s *searchForServiceImpl) GetByType(ctx context.Context, t searchfor.Type) ([]*searchfor.SearchFor, error) {
	if !t.IsValid() {
		return nil, searchfor.ErrInvalidType
	}

	entities, err := s.repository.FindByType(ctx, t)
	if err != nil {
		logger.Error("GetByType: lookup failed", err)
		return nil, fmt.Errorf("get search items: %w", err)
	}
	return entities, nil
}

// Update applies only the fields present in the request, with the same
// presence rules as the user update: non-photo fields must be present and
// non-empty, RecentPhoto goes by key presence.
func (s *searchForServiceImpl) Update(ctx context.Context, id uuid.UUID, req *searchfor.UpdateSearchForRequest) (*searchfor.SearchFor, error) {
	if req == nil {
		return nil, fmt.Errorf("update search item: invalid request")
	}

	entity, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, searchfor.ErrSearchForNotFound) {
			return nil, searchfor.ErrSearchForNotFound
		}
		logger.Error("Update: lookup failed", err)
		return nil, fmt.Errorf("update search item: %w", err)
	}

	if req.Type != nil && *req.Type != "" {
		entity.UpdateType(*req.Type)
	}

	if req.Name != nil && *req.Name != "" {
		entity.UpdateName(*req.Name)
	}

	if req.BirthdayYear != nil && *req.BirthdayYear != 0 {
		entity.UpdateBirthdayYear(*req.BirthdayYear)
	}

	if req.LastLocation != nil && *req.LastLocation != "" {
		entity.UpdateLastLocation(*req.LastLocation)
	}

	if req.LastSeenDateTime != nil && !req.LastSeenDateTime.IsZero() {
		entity.UpdateLastSeenDateTime(*req.LastSeenDateTime)
	}

	if req.Description != nil && *req.Description != "" {
		entity.UpdateDescription(*req.Description)
	}

	if req.Contact != nil && *req.Contact != "" {
		entity.UpdateContact(*req.Contact)
	}

	if req.RecentPhoto.Set {
		entity.UpdateRecentPhoto(req.RecentPhoto.Value)
	}

	updated, err := s.repository.Save(ctx, entity)
	if err != nil {
		logger.Error("Update: save failed", err)
		return nil, fmt.Errorf("update search item: %w", err)
	}

	return updated, nil
}

// Delete soft-deletes the report; unknown ids are a successful no-op.
func (s *searchForServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, searchfor.ErrSearchForNotFound) {
			return nil
		}
		logger.Error("Delete: lookup failed", err)
		return fmt.Errorf("delete search item: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		logger.Error("Delete: repository delete failed", err)
		return fmt.Errorf("delete search item: %w", err)
	}

	logger.Info("search item deleted", map[string]interface{}{"search_for_id": id.String()})
	return nil
}
