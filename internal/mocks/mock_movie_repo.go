package mocks

import (
	"context"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc        func(ctx context.Context, data domain.MovieData) (*domain.Movie, error)
	GetByIdFunc       func(ctx context.Context, id int) (*domain.Movie, error)
	GetAllFunc        func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, error)
	SearchByTitleFunc func(ctx context.Context, title string) ([]*domain.Movie, error)
	CountFunc         func(ctx context.Context) (int, error)
	UpdateFunc        func(ctx context.Context, id int, patch domain.MoviePatch) (*domain.Movie, error)
	DeleteByIdFunc    func(ctx context.Context, id int) (bool, error)
}

func (m *MockMovieRepo) Create(ctx context.Context, data domain.MovieData) (*domain.Movie, error) {
	return m.CreateFunc(ctx, data)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockMovieRepo) SearchByTitle(ctx context.Context, title string) ([]*domain.Movie, error) {
	return m.SearchByTitleFunc(ctx, title)
}

func (m *MockMovieRepo) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

func (m *MockMovieRepo) Update(ctx context.Context, id int, patch domain.MoviePatch) (*domain.Movie, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *MockMovieRepo) DeleteById(ctx context.Context, id int) (bool, error) {
	return m.DeleteByIdFunc(ctx, id)
}
