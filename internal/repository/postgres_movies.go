package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

const movieColumns = "id, title, imdb_id, year, type, poster_url, genre, director, plot, created_at, updated_at"

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, data domain.MovieData) (*domain.Movie, error) {
	query := `INSERT INTO movies (title, imdb_id, year, type, poster_url, genre, director, plot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + movieColumns

	row := p.db.QueryRow(ctx, query,
		data.Title,
		data.ImdbID,
		data.Year,
		data.Type,
		data.PosterURL,
		data.Genre,
		data.Director,
		data.Plot,
	)

	movie, err := scanMovie(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateImdbID
		}

		return nil, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		ORDER BY title ASC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMovies(rows)
}

func (p *PostgresMovieRepository) SearchByTitle(ctx context.Context, title string) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY title ASC, id ASC`

	rows, err := p.db.Query(ctx, query, title)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMovies(rows)
}

func (p *PostgresMovieRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := p.db.QueryRow(ctx, `SELECT count(*) FROM movies`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, id int, patch domain.MoviePatch) (*domain.Movie, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Year != nil {
		set("year", *patch.Year)
	}
	if patch.Type != nil {
		set("type", *patch.Type)
	}
	if patch.PosterURL != nil {
		set("poster_url", *patch.PosterURL)
	}
	if patch.Genre != nil {
		set("genre", *patch.Genre)
	}
	if patch.Director != nil {
		set("director", *patch.Director)
	}
	if patch.Plot != nil {
		set("plot", *patch.Plot)
	}

	query := fmt.Sprintf(`UPDATE movies SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), movieColumns)

	movie, err := scanMovie(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) DeleteById(ctx context.Context, id int) (bool, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var movie domain.Movie

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.ImdbID,
		&movie.Year,
		&movie.Type,
		&movie.PosterURL,
		&movie.Genre,
		&movie.Director,
		&movie.Plot,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func collectMovies(rows pgx.Rows) ([]*domain.Movie, error) {
	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
