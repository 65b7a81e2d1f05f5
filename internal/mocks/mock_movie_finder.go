package mocks

import (
	"context"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

type MockMovieFinder struct {
	domain.MovieFinder
	FindByTitleFunc func(ctx context.Context, title string) (*domain.MovieData, error)
	FindByIDFunc    func(ctx context.Context, imdbID string) (*domain.MovieData, error)
}

func (m *MockMovieFinder) FindByTitle(ctx context.Context, title string) (*domain.MovieData, error) {
	return m.FindByTitleFunc(ctx, title)
}

func (m *MockMovieFinder) FindByID(ctx context.Context, imdbID string) (*domain.MovieData, error) {
	return m.FindByIDFunc(ctx, imdbID)
}
