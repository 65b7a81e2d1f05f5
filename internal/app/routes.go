package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

const adminRole = "admin"

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("movie-catalog-api", otelchi.WithChiRoutes(r)))

	r.Get("/health", app.Healthcheck)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.Post("/create", app.CreateMovie)
		r.Get("/search", app.SearchMovies)
		r.Get("/{id}", app.GetMovie)
		r.Patch("/{id}", app.UpdateMovie)
		r.With(app.requireRole(adminRole)).Delete("/{id}", app.DeleteMovie)
	})

	return r
}
