package searchfor

import (
	"time"

	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
)

// Type says whether a report is about a person or an animal. The wire
// values match the stored enum.
type Type string

const (
	TypePerson Type = "Person"
	TypeAnimal Type = "Animal"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePerson, TypeAnimal:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// SearchFor is a missing-person/animal report. It always references the
// reporting user; the reference is resolved before creation and never nil.
// Mutation goes through the per-field updaters, each refreshing
// updatedDate.
type SearchFor struct {
	id               uuid.UUID
	searchType       Type
	name             string
	birthdayYear     int
	lastLocation     string
	lastSeenDateTime time.Time
	description      string
	contact          string
	recentPhoto      *string
	reporter         *user.User
	isDeleted        bool
	createdDate      time.Time
	updatedDate      time.Time
}

// New creates a report for an already-resolved reporter: fresh id, both
// timestamps set to now, not deleted. RecentPhoto may be nil.
func New(
	searchType Type,
	name string,
	birthdayYear int,
	lastLocation string,
	lastSeenDateTime time.Time,
	description string,
	reporter *user.User,
	contact string,
	recentPhoto *string,
) *SearchFor {
	now := time.Now()
	return &SearchFor{
		id:               uuid.New(),
		searchType:       searchType,
		name:             name,
		birthdayYear:     birthdayYear,
		lastLocation:     lastLocation,
		lastSeenDateTime: lastSeenDateTime,
		description:      description,
		contact:          contact,
		recentPhoto:      recentPhoto,
		reporter:         reporter,
		isDeleted:        false,
		createdDate:      now,
		updatedDate:      now,
	}
}

// Reconstitute rehydrates a report from storage, all fields explicit, no
// generation.
func Reconstitute(
	id uuid.UUID,
	searchType Type,
	name string,
	birthdayYear int,
	lastLocation string,
	lastSeenDateTime time.Time,
	description string,
	reporter *user.User,
	contact string,
	recentPhoto *string,
	isDeleted bool,
	createdDate, updatedDate time.Time,
) *SearchFor {
	return &SearchFor{
		id:               id,
		searchType:       searchType,
		name:             name,
		birthdayYear:     birthdayYear,
		lastLocation:     lastLocation,
		lastSeenDateTime: lastSeenDateTime,
		description:      description,
		contact:          contact,
		recentPhoto:      recentPhoto,
		reporter:         reporter,
		isDeleted:        isDeleted,
		createdDate:      createdDate,
		updatedDate:      updatedDate,
	}
}

// Accessors

func (s *SearchFor) ID() uuid.UUID              { return s.id }
func (s *SearchFor) Type() Type                 { return s.searchType }
func (s *SearchFor) Name() string               { return s.name }
func (s *SearchFor) BirthdayYear() int          { return s.birthdayYear }
func (s *SearchFor) LastLocation() string       { return s.lastLocation }
func (s *SearchFor) LastSeenDateTime() time.Time { return s.lastSeenDateTime }
func (s *SearchFor) Description() string        { return s.description }
func (s *SearchFor) Contact() string            { return s.contact }
func (s *SearchFor) RecentPhoto() *string       { return s.recentPhoto }
func (s *SearchFor) Reporter() *user.User       { return s.reporter }
func (s *SearchFor) IsDeleted() bool            { return s.isDeleted }
func (s *SearchFor) CreatedDate() time.Time     { return s.createdDate }
func (s *SearchFor) UpdatedDate() time.Time     { return s.updatedDate }

// Mutators

func (s *SearchFor) UpdateType(t Type) {
	s.searchType = t
	s.touch()
}

func (s *SearchFor) UpdateName(name string) {
	s.name = name
	s.touch()
}

func (s *SearchFor) UpdateBirthdayYear(year int) {
	s.birthdayYear = year
	s.touch()
}

func (s *SearchFor) UpdateLastLocation(location string) {
	s.lastLocation = location
	s.touch()
}

func (s *SearchFor) UpdateLastSeenDateTime(at time.Time) {
	s.lastSeenDateTime = at
	s.touch()
}

func (s *SearchFor) UpdateDescription(description string) {
	s.description = description
	s.touch()
}

func (s *SearchFor) UpdateContact(contact string) {
	s.contact = contact
	s.touch()
}

// UpdateRecentPhoto accepts nil to clear the photo explicitly.
func (s *SearchFor) UpdateRecentPhoto(photo *string) {
	s.recentPhoto = photo
	s.touch()
}

func (s *SearchFor) MarkAsDeleted() {
	s.isDeleted = true
	s.touch()
}

func (s *SearchFor) Restore() {
	s.isDeleted = false
	s.touch()
}

func (s *SearchFor) touch() {
	s.updatedDate = time.Now()
}
