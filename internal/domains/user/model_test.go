package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	photo := "https://img.example.com/jane.jpg"
	u := New("Jane Doe", "jane@example.com", "12345678900", "+55 11 99999-0000", &photo)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "Jane Doe", u.Name())
	assert.Equal(t, "jane@example.com", u.Email())
	assert.Equal(t, "12345678900", u.Document())
	assert.Equal(t, "+55 11 99999-0000", u.Contact())
	require.NotNil(t, u.Photo())
	assert.Equal(t, photo, *u.Photo())
	assert.False(t, u.IsDeleted())
	assert.False(t, u.CreatedDate().IsZero())
	assert.Equal(t, u.CreatedDate(), u.UpdatedDate())
}

func TestNew_NilPhoto(t *testing.T) {
	u := New("Jane Doe", "jane@example.com", "12345678900", "+55 11 99999-0000", nil)
	assert.Nil(t, u.Photo())
}

func TestReconstitute(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	u := Reconstitute(id, "Jane Doe", "jane@example.com", "12345678900", "+55 11 99999-0000", nil, true, created, updated)

	assert.Equal(t, id, u.ID())
	assert.True(t, u.IsDeleted())
	assert.Equal(t, created, u.CreatedDate())
	assert.Equal(t, updated, u.UpdatedDate())
}

func TestMutators_BumpUpdatedDate(t *testing.T) {
	u := New("Jane Doe", "jane@example.com", "12345678900", "+55 11 99999-0000", nil)
	before := u.UpdatedDate()

	time.Sleep(5 * time.Millisecond)
	u.UpdateName("Jane Roe")

	assert.Equal(t, "Jane Roe", u.Name())
	assert.True(t, u.UpdatedDate().After(before))
	assert.Equal(t, before, u.CreatedDate(), "createdDate must not move")
}

func TestUpdatePhoto_NilClears(t *testing.T) {
	photo := "https://img.example.com/jane.jpg"
	u := New("Jane Doe", "jane@example.com", "12345678900", "+55 11 99999-0000", &photo)

	u.UpdatePhoto(nil)

	assert.Nil(t, u.Photo())
}

func TestMarkAsDeleted_Restore_RoundTrip(t *testing.T) {
	u := New("Jane Doe", "jane@example.com", "12345678900", "+55 11 99999-0000", nil)
	beforeDelete := u.UpdatedDate()

	time.Sleep(5 * time.Millisecond)
	u.MarkAsDeleted()
	assert.True(t, u.IsDeleted())
	afterDelete := u.UpdatedDate()
	assert.True(t, afterDelete.After(beforeDelete))

	time.Sleep(5 * time.Millisecond)
	u.Restore()
	assert.False(t, u.IsDeleted())
	assert.True(t, u.UpdatedDate().After(afterDelete))

	// Everything except the timestamps and the flag survives the round trip.
	assert.Equal(t, "Jane Doe", u.Name())
	assert.Equal(t, "jane@example.com", u.Email())
	assert.Equal(t, "12345678900", u.Document())
	assert.Equal(t, "+55 11 99999-0000", u.Contact())
	assert.Nil(t, u.Photo())
}
