// Package seeder fills an empty catalog with movies fetched from the
// external source at startup. It runs at most once per process, drops failed
// lookups silently, and never blocks request serving on its outcome.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

const (
	DefaultMovieCount = 10

	maxConcurrentLookups = 8
	maxRandomID          = 100000
)

type Seeder struct {
	finder domain.MovieFinder
	repo   domain.MovieRepository
	logger *slog.Logger
	count  int
}

func New(finder domain.MovieFinder, repo domain.MovieRepository, logger *slog.Logger, count int) *Seeder {
	if count <= 0 {
		count = DefaultMovieCount
	}

	return &Seeder{
		finder: finder,
		repo:   repo,
		logger: logger,
		count:  count,
	}
}

// Run fetches a batch of random imdb ids concurrently and inserts whatever
// came back valid. Individual lookup failures and duplicate ids are skipped,
// not retried. It returns the number of movies inserted.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	logger := s.logger.With("seed_run", uuid.NewString())

	ids := randomImdbIDs(s.count)
	results := make([]*domain.MovieData, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, id := range ids {
		g.Go(func() error {
			data, err := s.finder.FindByID(gctx, id)
			if err != nil {
				logger.Debug("dropping failed lookup", "imdb_id", id, "error", err)
				return nil
			}

			results[i] = data

			return nil
		})
	}

	// Lookups never return errors into the group, so this only waits.
	_ = g.Wait()

	inserted := 0

	for _, data := range results {
		if data == nil || data.Title == "" || data.ImdbID == "" || data.Type == "" {
			continue
		}

		_, err := s.repo.Create(ctx, *data)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateImdbID) {
				continue
			}

			return inserted, err
		}

		inserted++
	}

	logger.Info("seeding finished", "requested", s.count, "inserted", inserted)

	return inserted, nil
}

func randomImdbIDs(count int) []string {
	ids := make([]string, count)

	for i := range ids {
		ids[i] = fmt.Sprintf("tt%07d", rand.IntN(maxRandomID)+1)
	}

	return ids
}
