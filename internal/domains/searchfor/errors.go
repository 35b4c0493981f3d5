package searchfor

import (
	"errors"
	"net/http"
)

var (
	// ErrSearchForNotFound is returned when an id does not match any
	// non-deleted report.
	ErrSearchForNotFound = errors.New("search item not found")

	// ErrReporterNotFound is returned when the referenced user does not
	// exist, either at create time or when the row vanished between check
	// and save.
	ErrReporterNotFound = errors.New("reporting user not found")

	// ErrInvalidType is returned for a type outside Person/Animal.
	ErrInvalidType = errors.New("invalid search type")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrSearchForNotFound) || errors.Is(err, ErrReporterNotFound)
}

// GetHTTPStatusCode maps domain errors to HTTP status codes; anything not
// listed is a storage fault and surfaces as 500.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrSearchForNotFound), errors.Is(err, ErrReporterNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
