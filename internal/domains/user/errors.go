package user

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when an id or email does not match any
	// non-deleted user.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a create or update would leave two
	// active users with the same email.
	ErrEmailTaken = errors.New("user with this email already exists")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailTaken)
}

// GetHTTPStatusCode maps domain errors to HTTP status codes; anything not
// listed is a storage fault and surfaces as 500.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
