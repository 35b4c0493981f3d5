package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor"
	searchforrepo "github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor/repository"
	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
	userrepo "github.com/samuel-prates/find-my-buddy-api/internal/domains/user/repository"
	"github.com/samuel-prates/find-my-buddy-api/internal/shared"
)

type fixture struct {
	svc      searchfor.Service
	repo     *searchforrepo.MemorySearchForRepository
	userRepo *userrepo.MemoryUserRepository
	reporter *user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := userrepo.NewMemoryUserRepository()
	items := searchforrepo.NewMemorySearchForRepository()

	reporter, err := users.Save(context.Background(),
		user.New("John Reporter", "john@example.com", "98765432100", "+55 11 98888-0000", nil))
	require.NoError(t, err)

	return &fixture{
		svc:      NewSearchForService(items, users),
		repo:     items,
		userRepo: users,
		reporter: reporter,
	}
}

func createRequest(reporterID uuid.UUID) *searchfor.CreateSearchForRequest {
	return &searchfor.CreateSearchForRequest{
		Type:             searchfor.TypePerson,
		Name:             "Maria",
		BirthdayYear:     2010,
		LastLocation:     "Parque Ibirapuera",
		LastSeenDateTime: time.Date(2024, 6, 10, 18, 30, 0, 0, time.UTC),
		Description:      "Wearing a red coat",
		Contact:          "+55 11 97777-0000",
		UserID:           reporterID,
	}
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), createRequest(f.reporter.ID()))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID())
	assert.Equal(t, searchfor.TypePerson, created.Type())
	require.NotNil(t, created.Reporter())
	assert.Equal(t, f.reporter.ID(), created.Reporter().ID())
	assert.False(t, created.IsDeleted())
}

func TestCreate_UnknownReporter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createRequest(uuid.New()))
	assert.ErrorIs(t, err, searchfor.ErrReporterNotFound)

	// The failed create must not have written anything.
	all, err := f.repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_DeletedReporter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.userRepo.Delete(ctx, f.reporter.ID()))

	_, err := f.svc.Create(ctx, createRequest(f.reporter.ID()))
	assert.ErrorIs(t, err, searchfor.ErrReporterNotFound)
}

func TestCreate_EmptyPhotoBecomesNil(t *testing.T) {
	f := newFixture(t)

	req := createRequest(f.reporter.ID())
	req.RecentPhoto = strPtr("")

	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, created.RecentPhoto())
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, searchfor.ErrSearchForNotFound)
}

func TestGetByUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.userRepo.Save(ctx,
		user.New("Other", "other@example.com", "111", "c", nil))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, createRequest(f.reporter.ID()))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, createRequest(other.ID()))
	require.NoError(t, err)

	mine, err := f.svc.GetByUser(ctx, f.reporter.ID())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.reporter.ID(), mine[0].Reporter().ID())
}

func TestGetByType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createRequest(f.reporter.ID()))
	require.NoError(t, err)

	animal := createRequest(f.reporter.ID())
	animal.Type = searchfor.TypeAnimal
	animal.Name = "Rex"
	_, err = f.svc.Create(ctx, animal)
	require.NoError(t, err)

	people, err := f.svc.GetByType(ctx, searchfor.TypePerson)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Maria", people[0].Name())

	animals, err := f.svc.GetByType(ctx, searchfor.TypeAnimal)
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, "Rex", animals[0].Name())
}

func TestGetByType_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByType(context.Background(), searchfor.Type("Alien"))
	assert.ErrorIs(t, err, searchfor.ErrInvalidType)
}

func TestUpdate_PartialPreservesOtherFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, createRequest(f.reporter.ID()))
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.ID(), &searchfor.UpdateSearchForRequest{
		LastLocation: strPtr("Pinheiros"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Pinheiros", updated.LastLocation())
	assert.Equal(t, "Maria", updated.Name())
	assert.Equal(t, 2010, updated.BirthdayYear())
	assert.Equal(t, searchfor.TypePerson, updated.Type())
}

func TestUpdate_ZeroValuesAreIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, createRequest(f.reporter.ID()))
	require.NoError(t, err)

	year := 0
	var zeroTime time.Time
	emptyType := searchfor.Type("")
	updated, err := f.svc.Update(ctx, created.ID(), &searchfor.UpdateSearchForRequest{
		Type:             &emptyType,
		Name:             strPtr(""),
		BirthdayYear:     &year,
		LastSeenDateTime: &zeroTime,
	})
	require.NoError(t, err)

	assert.Equal(t, searchfor.TypePerson, updated.Type())
	assert.Equal(t, "Maria", updated.Name())
	assert.Equal(t, 2010, updated.BirthdayYear())
	assert.Equal(t, created.LastSeenDateTime(), updated.LastSeenDateTime())
}

func TestUpdate_RecentPhotoNullClears(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := createRequest(f.reporter.ID())
	req.RecentPhoto = strPtr("https://img.example.com/maria.jpg")
	created, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.ID(), &searchfor.UpdateSearchForRequest{
		RecentPhoto: shared.OptionalString{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.RecentPhoto())
}

func TestUpdate_RecentPhotoOmittedIsUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := createRequest(f.reporter.ID())
	req.RecentPhoto = strPtr("https://img.example.com/maria.jpg")
	created, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.ID(), &searchfor.UpdateSearchForRequest{
		Name: strPtr("Maria Clara"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RecentPhoto())
	assert.Equal(t, "https://img.example.com/maria.jpg", *updated.RecentPhoto())
}

func TestUpdate_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), uuid.New(), &searchfor.UpdateSearchForRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, searchfor.ErrSearchForNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, createRequest(f.reporter.ID()))
	require.NoError(t, err)

	assert.NoError(t, f.svc.Delete(ctx, created.ID()))
	assert.NoError(t, f.svc.Delete(ctx, created.ID()), "second delete is a no-op")
	assert.NoError(t, f.svc.Delete(ctx, uuid.New()), "unknown id is a no-op")

	_, err = f.svc.GetByID(ctx, created.ID())
	assert.ErrorIs(t, err, searchfor.ErrSearchForNotFound)

	kept, ok := f.repo.FindByIDIncludeDeleted(created.ID())
	require.True(t, ok)
	assert.True(t, kept.IsDeleted())
}

func TestGetAll_ExcludesDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	kept, err := f.svc.Create(ctx, createRequest(f.reporter.ID()))
	require.NoError(t, err)
	gone, err := f.svc.Create(ctx, createRequest(f.reporter.ID()))
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, gone.ID()))

	all, err := f.svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID(), all[0].ID())
}
