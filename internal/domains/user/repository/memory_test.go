package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
)

func TestMemoryUserRepository_SaveAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u := user.New("Jane Doe", "jane@example.com", "12345678900", "+55 11 99999-0000", nil)
	saved, err := repo.Save(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), saved.ID())

	byID, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email())

	byEmail, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), byEmail.ID())
}

func TestMemoryUserRepository_FindByID_Unknown(t *testing.T) {
	repo := NewMemoryUserRepository()

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestMemoryUserRepository_Save_DuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, user.New("Jane", "dup@example.com", "111", "c1", nil))
	require.NoError(t, err)

	_, err = repo.Save(ctx, user.New("John", "dup@example.com", "222", "c2", nil))
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestMemoryUserRepository_Save_ReusesEmailOfDeleted(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first := user.New("Jane", "reuse@example.com", "111", "c1", nil)
	_, err := repo.Save(ctx, first)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID()))

	_, err = repo.Save(ctx, user.New("John", "reuse@example.com", "222", "c2", nil))
	assert.NoError(t, err, "email of a deleted account is free again")
}

func TestMemoryUserRepository_Delete_SoftDeletes(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u := user.New("Jane", "jane@example.com", "111", "c1", nil)
	_, err := repo.Save(ctx, u)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, u.ID()))

	_, err = repo.FindByID(ctx, u.ID())
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// The row still exists, flagged as deleted.
	kept, ok := repo.FindByIDIncludeDeleted(u.ID())
	require.True(t, ok)
	assert.True(t, kept.IsDeleted())
}

func TestMemoryUserRepository_Delete_UnknownIsNoOp(t *testing.T) {
	repo := NewMemoryUserRepository()
	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))
}

func TestMemoryUserRepository_ClonesOnBoundary(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u := user.New("Jane", "jane@example.com", "111", "c1", nil)
	_, err := repo.Save(ctx, u)
	require.NoError(t, err)

	// Mutating the caller's entity must not leak into the store.
	u.UpdateName("Changed Outside")

	stored, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.Name())
}
