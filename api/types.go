// Package api holds the request and response types of the HTTP surface.
package api

import "time"

type CreateMovieRequest struct {
	Title     string  `json:"title" validate:"required,max=255"`
	ImdbID    string  `json:"imdb_id" validate:"required,imdb_id"`
	Year      *int    `json:"year,omitempty" validate:"omitempty,gte=1888,lte=2100"`
	Type      string  `json:"type" validate:"required,max=50"`
	PosterURL *string `json:"poster_url,omitempty" validate:"omitempty,max=2083"`
	Genre     *string `json:"genre,omitempty" validate:"omitempty,max=255"`
	Director  *string `json:"director,omitempty" validate:"omitempty,max=255"`
	Plot      *string `json:"plot,omitempty"`
}

// UpdateMovieRequest is a partial update; absent fields are left untouched.
// The imdb id is immutable and deliberately not part of this type.
type UpdateMovieRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Year      *int    `json:"year,omitempty" validate:"omitempty,gte=1888,lte=2100"`
	Type      *string `json:"type,omitempty" validate:"omitempty,min=1,max=50"`
	PosterURL *string `json:"poster_url,omitempty" validate:"omitempty,max=2083"`
	Genre     *string `json:"genre,omitempty" validate:"omitempty,max=255"`
	Director  *string `json:"director,omitempty" validate:"omitempty,max=255"`
	Plot      *string `json:"plot,omitempty"`
}

type MovieResponse struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	ImdbID    string    `json:"imdb_id"`
	Year      *int      `json:"year"`
	Type      string    `json:"type"`
	PosterURL *string   `json:"poster_url"`
	Genre     *string   `json:"genre"`
	Director  *string   `json:"director"`
	Plot      *string   `json:"plot"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MovieListResponse struct {
	Movies     []MovieResponse `json:"movies"`
	TotalPages int             `json:"total_pages"`
}

type DeleteMovieResponse struct {
	Detail string `json:"detail"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors"`
	RequestId        string            `json:"request_id,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}
