package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/shared"
)

// CreateUserRequest carries the payload for POST /users.
type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Document string  `json:"document"`
	Contact  string  `json:"contact"`
	Photo    *string `json:"photo"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Document, validation.Required.Error("document is required")),
		validation.Field(&r.Contact, validation.Required.Error("contact is required")),
		validation.Field(&r.Photo,
			validation.When(r.Photo != nil && *r.Photo != "", is.URL.Error("photo must be a valid URL")),
		),
	)
}

// UpdateUserRequest is a sparse update. A nil pointer means the field was
// not in the payload. For everything except Photo an empty value is also
// treated as "not provided" — the services only apply non-empty values.
// Photo goes by key presence instead: an explicit null clears it.
type UpdateUserRequest struct {
	Name     *string               `json:"name"`
	Email    *string               `json:"email"`
	Document *string               `json:"document"`
	Contact  *string               `json:"contact"`
	Photo    shared.OptionalString `json:"photo"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil && *r.Email != "", is.Email.Error("invalid email format")),
		),
	)
}

// UserResponse is the wire shape for a user.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Document    string    `json:"document"`
	Contact     string    `json:"contact"`
	Photo       *string   `json:"photo"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

func ToResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		Document:    u.Document(),
		Contact:     u.Contact(),
		Photo:       u.Photo(),
		CreatedDate: u.CreatedDate(),
		UpdatedDate: u.UpdatedDate(),
	}
}

func ToResponses(users []*User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToResponse(u))
	}
	return out
}
