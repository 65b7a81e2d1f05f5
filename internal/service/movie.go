// Package service owns the business rules between the HTTP layer and the
// store: external-lookup creation, pagination composition, and pass-through
// CRUD. It keeps no state of its own.
package service

import (
	"context"
	"fmt"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

type MovieService struct {
	repo   domain.MovieRepository
	finder domain.MovieFinder
}

func NewMovieService(repo domain.MovieRepository, finder domain.MovieFinder) *MovieService {
	return &MovieService{
		repo:   repo,
		finder: finder,
	}
}

// CreateFromTitle looks the title up in the external source and persists the
// result. An in-band lookup miss is ErrLookupNotFound; transport failures
// surface as ErrUpstream from the finder.
func (s *MovieService) CreateFromTitle(ctx context.Context, title string) (*domain.Movie, error) {
	data, err := s.finder.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrLookupNotFound, title)
	}

	return s.repo.Create(ctx, *data)
}

func (s *MovieService) Create(ctx context.Context, data domain.MovieData) (*domain.Movie, error) {
	return s.repo.Create(ctx, data)
}

func (s *MovieService) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	return s.repo.GetById(ctx, id)
}

// List returns one page of movies ordered by title, plus pagination metadata
// computed from the total row count.
func (s *MovieService) List(ctx context.Context, page, pageSize int) ([]*domain.Movie, *domain.Metadata, error) {
	movies, err := s.repo.GetAll(ctx, domain.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	return movies, domain.NewMetadata(total, page, pageSize), nil
}

func (s *MovieService) Search(ctx context.Context, title string) ([]*domain.Movie, error) {
	return s.repo.SearchByTitle(ctx, title)
}

func (s *MovieService) Update(ctx context.Context, id int, patch domain.MoviePatch) (*domain.Movie, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *MovieService) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.DeleteById(ctx, id)
}

func (s *MovieService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
