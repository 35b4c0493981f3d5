package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the reporter profile. State is private and only changes through
// the mutators below, each of which refreshes updatedDate. The entity does
// no format validation; that belongs to the request DTOs.
type User struct {
	id          uuid.UUID
	name        string
	email       string
	document    string
	contact     string
	photo       *string
	isDeleted   bool
	createdDate time.Time
	updatedDate time.Time
}

// New creates a brand-new user: fresh id, both timestamps set to now,
// not deleted. Photo may be nil.
func New(name, email, document, contact string, photo *string) *User {
	now := time.Now()
	return &User{
		id:          uuid.New(),
		name:        name,
		email:       email,
		document:    document,
		contact:     contact,
		photo:       photo,
		isDeleted:   false,
		createdDate: now,
		updatedDate: now,
	}
}

// Reconstitute rehydrates a user from storage with every field explicit.
// No id generation and no timestamp side effects happen here, so loading
// a row never looks like creating one.
func Reconstitute(
	id uuid.UUID,
	name, email, document, contact string,
	photo *string,
	isDeleted bool,
	createdDate, updatedDate time.Time,
) *User {
	return &User{
		id:          id,
		name:        name,
		email:       email,
		document:    document,
		contact:     contact,
		photo:       photo,
		isDeleted:   isDeleted,
		createdDate: createdDate,
		updatedDate: updatedDate,
	}
}

// Accessors

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Email() string          { return u.email }
func (u *User) Document() string       { return u.document }
func (u *User) Contact() string        { return u.contact }
func (u *User) Photo() *string         { return u.photo }
func (u *User) IsDeleted() bool        { return u.isDeleted }
func (u *User) CreatedDate() time.Time { return u.createdDate }
func (u *User) UpdatedDate() time.Time { return u.updatedDate }

// Mutators

func (u *User) UpdateName(name string) {
	u.name = name
	u.touch()
}

func (u *User) UpdateEmail(email string) {
	u.email = email
	u.touch()
}

func (u *User) UpdateDocument(document string) {
	u.document = document
	u.touch()
}

func (u *User) UpdateContact(contact string) {
	u.contact = contact
	u.touch()
}

// UpdatePhoto accepts nil to clear the photo explicitly.
func (u *User) UpdatePhoto(photo *string) {
	u.photo = photo
	u.touch()
}

func (u *User) MarkAsDeleted() {
	u.isDeleted = true
	u.touch()
}

func (u *User) Restore() {
	u.isDeleted = false
	u.touch()
}

func (u *User) touch() {
	u.updatedDate = time.Now()
}
