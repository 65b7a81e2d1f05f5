package domain

import "errors"

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateImdbID = errors.New("a movie with this imdb id already exists")
	ErrLookupNotFound  = errors.New("movie not found in external source")
	ErrUpstream        = errors.New("external movie source unavailable")
	ErrUnauthenticated = errors.New("invalid or missing authentication token")
	ErrForbidden       = errors.New("insufficient permissions")
)
