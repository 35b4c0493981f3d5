package searchfor

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
	"github.com/samuel-prates/find-my-buddy-api/internal/shared"
)

// CreateSearchForRequest carries the payload for POST /search-for.
type CreateSearchForRequest struct {
	Type             Type      `json:"type"`
	Name             string    `json:"name"`
	BirthdayYear     int       `json:"birthday_year"`
	LastLocation     string    `json:"last_location"`
	LastSeenDateTime time.Time `json:"last_seen_date_time"`
	Description      string    `json:"description"`
	Contact          string    `json:"contact"`
	UserID           uuid.UUID `json:"user_id"`
	RecentPhoto      *string   `json:"recent_photo"`
}

func (r CreateSearchForRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypePerson, TypeAnimal).Error("type must be Person or Animal"),
		),
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.BirthdayYear,
			validation.Required.Error("birthday year is required"),
			validation.Min(1900).Error("birthday year is out of range"),
		),
		validation.Field(&r.LastLocation, validation.Required.Error("last location is required")),
		validation.Field(&r.LastSeenDateTime, validation.Required.Error("last seen date/time is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Contact, validation.Required.Error("contact is required")),
		validation.Field(&r.UserID, validation.Required.Error("user id is required")),
		validation.Field(&r.RecentPhoto,
			validation.When(r.RecentPhoto != nil && *r.RecentPhoto != "", is.URL.Error("recent photo must be a valid URL")),
		),
	)
}

// UpdateSearchForRequest is a sparse update with the same presence rules as
// the user update: non-photo fields apply only when present and non-empty
// (zero counts as empty for the year, the zero time for the timestamp);
// RecentPhoto goes by key presence so an explicit null clears it.
type UpdateSearchForRequest struct {
	Type             *Type                 `json:"type"`
	Name             *string               `json:"name"`
	BirthdayYear     *int                  `json:"birthday_year"`
	LastLocation     *string               `json:"last_location"`
	LastSeenDateTime *time.Time            `json:"last_seen_date_time"`
	Description      *string               `json:"description"`
	Contact          *string               `json:"contact"`
	RecentPhoto      shared.OptionalString `json:"recent_photo"`
}

func (r UpdateSearchForRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.When(r.Type != nil && *r.Type != "",
				validation.In(TypePerson, TypeAnimal).Error("type must be Person or Animal"),
			),
		),
	)
}

// SearchForResponse is the wire shape for a report, reporter embedded.
type SearchForResponse struct {
	ID               uuid.UUID          `json:"id"`
	Type             Type               `json:"type"`
	Name             string             `json:"name"`
	BirthdayYear     int                `json:"birthday_year"`
	LastLocation     string             `json:"last_location"`
	LastSeenDateTime time.Time          `json:"last_seen_date_time"`
	Description      string             `json:"description"`
	Contact          string             `json:"contact"`
	RecentPhoto      *string            `json:"recent_photo"`
	User             *user.UserResponse `json:"user"`
	CreatedDate      time.Time          `json:"created_date"`
	UpdatedDate      time.Time          `json:"updated_date"`
}

func ToResponse(s *SearchFor) *SearchForResponse {
	return &SearchForResponse{
		ID:               s.ID(),
		Type:             s.Type(),
		Name:             s.Name(),
		BirthdayYear:     s.BirthdayYear(),
		LastLocation:     s.LastLocation(),
		LastSeenDateTime: s.LastSeenDateTime(),
		Description:      s.Description(),
		Contact:          s.Contact(),
		RecentPhoto:      s.RecentPhoto(),
		User:             user.ToResponse(s.Reporter()),
		CreatedDate:      s.CreatedDate(),
		UpdatedDate:      s.UpdatedDate(),
	}
}

func ToResponses(items []*SearchFor) []SearchForResponse {
	out := make([]SearchForResponse, 0, len(items))
	for _, s := range items {
		out = append(out, *ToResponse(s))
	}
	return out
}
