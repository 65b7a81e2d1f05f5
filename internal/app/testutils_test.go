package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/britemovies/movie-catalog-api/api"
	"github.com/britemovies/movie-catalog-api/internal/auth"
	"github.com/britemovies/movie-catalog-api/internal/config"
	"github.com/britemovies/movie-catalog-api/internal/domain"
	"github.com/britemovies/movie-catalog-api/internal/mocks"
	"github.com/britemovies/movie-catalog-api/internal/service"
	"github.com/britemovies/movie-catalog-api/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:        config.Config{Env: "test"},
		validator:     validator.NewValidator(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		movies:        service.NewMovieService(&mocks.MockMovieRepo{}, &mocks.MockMovieFinder{}),
		authenticator: auth.NewAuthenticator(auth.DefaultIdentityStore()),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withMovies(repo domain.MovieRepository, finder domain.MovieFinder) func(*Application) {
	return func(app *Application) {
		app.movieRepo = repo
		app.finder = finder
		app.movies = service.NewMovieService(repo, finder)
	}
}

// executeRequest serves the request through the full router, so URL params
// and middleware behave as in production. A nil body sends an empty body.
func executeRequest(t *testing.T, app *Application, method, url string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = bytes.NewReader(nil)

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}

		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")

	for key, value := range headers {
		r.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	app.Routes().ServeHTTP(w, r)

	return w
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage, wantIssue string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	if wantIssue != "" {
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		for _, vErr := range validationResp.ValidationErrors {
			if vErr.Issue == wantIssue {
				return
			}
		}

		t.Errorf("Expected validation issue %q not found in response", wantIssue)

		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if wantErrMessage != "" && errorResp.Message != wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
	}
}

func ptr[T any](v T) *T {
	return &v
}
