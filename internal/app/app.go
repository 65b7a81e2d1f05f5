package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/britemovies/movie-catalog-api/internal/auth"
	"github.com/britemovies/movie-catalog-api/internal/config"
	"github.com/britemovies/movie-catalog-api/internal/domain"
	"github.com/britemovies/movie-catalog-api/internal/omdb"
	"github.com/britemovies/movie-catalog-api/internal/repository"
	"github.com/britemovies/movie-catalog-api/internal/seeder"
	"github.com/britemovies/movie-catalog-api/internal/service"
	appvalidator "github.com/britemovies/movie-catalog-api/internal/validator"
	"github.com/britemovies/movie-catalog-api/internal/vcs"
)

var version = vcs.Version()

type Application struct {
	config    config.Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate

	movies        *service.MovieService
	movieRepo     domain.MovieRepository
	finder        domain.MovieFinder
	authenticator *auth.Authenticator
}

// New wires the application together: database pool, optional Redis cache,
// OMDb client, repository, service, and the authorization gate.
func New(cfg config.Config, logger *slog.Logger) (*Application, error) {
	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	var redisClient redis.UniversalClient

	if cfg.RedisURL != "" {
		redisClient, err = newRedisClient(cfg)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	finderOpts := []omdb.Option{omdb.WithBaseURL(cfg.OmdbBaseURL)}
	if redisClient != nil {
		finderOpts = append(finderOpts, omdb.WithCache(redisClient))
	}

	finder := omdb.NewClient(cfg.OmdbAPIKey, logger, finderOpts...)
	movieRepo := repository.NewPostgresMovieRepository(db)

	app := &Application{
		config:        cfg,
		logger:        logger,
		db:            db,
		redis:         redisClient,
		validator:     appvalidator.NewValidator(),
		movies:        service.NewMovieService(movieRepo, finder),
		movieRepo:     movieRepo,
		finder:        finder,
		authenticator: auth.NewAuthenticator(auth.DefaultIdentityStore()),
	}

	return app, nil
}

func (app *Application) Close() {
	if app.redis != nil {
		app.redis.Close()
	}

	app.db.Close()
}

// SeedIfEmpty populates the catalog from the external source when the movies
// table has no rows yet. Failures are logged and swallowed; seeding must
// never prevent the server from starting.
func (app *Application) SeedIfEmpty(ctx context.Context) {
	count, err := app.movies.Count(ctx)
	if err != nil {
		app.logger.Error("failed to check catalog size before seeding", "error", err)
		return
	}

	if count > 0 {
		return
	}

	app.logger.Info("catalog is empty, seeding", "count", app.config.SeedCount)

	s := seeder.New(app.finder, app.movieRepo, app.logger, app.config.SeedCount)

	_, err = s.Run(ctx)
	if err != nil {
		app.logger.Error("error while seeding the catalog", "error", err)
	}
}

func newDatabasePool(cfg config.Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newRedisClient(cfg config.Config) (redis.UniversalClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "title", app.config.AppTitle)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
