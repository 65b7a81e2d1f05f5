package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID        int
	Title     string
	ImdbID    string
	Year      *int
	Type      string
	PosterURL *string
	Genre     *string
	Director  *string
	Plot      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MovieData carries the caller-supplied fields of a movie. Generated columns
// (id, created_at, updated_at) are assigned by the store on insert.
type MovieData struct {
	Title     string
	ImdbID    string
	Year      *int
	Type      string
	PosterURL *string
	Genre     *string
	Director  *string
	Plot      *string
}

// MoviePatch is a partial update. Nil fields are left untouched; imdb_id is
// immutable and has no patch field.
type MoviePatch struct {
	Title     *string
	Year      *int
	Type      *string
	PosterURL *string
	Genre     *string
	Director  *string
	Plot      *string
}

type MovieRepository interface {
	Create(ctx context.Context, data MovieData) (*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, error)
	SearchByTitle(ctx context.Context, title string) ([]*Movie, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id int, patch MoviePatch) (*Movie, error)
	DeleteById(ctx context.Context, id int) (bool, error)
}

// MovieFinder looks movies up in an external data source. A nil result with
// a nil error means the source reported "not found" in-band.
type MovieFinder interface {
	FindByTitle(ctx context.Context, title string) (*MovieData, error)
	FindByID(ctx context.Context, imdbID string) (*MovieData, error)
}
