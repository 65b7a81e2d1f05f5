package app

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/britemovies/movie-catalog-api/api"
	"github.com/britemovies/movie-catalog-api/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// CreateMovie creates a movie in one of two ways: a `title` query parameter
// triggers an external lookup, a request body persists the fields directly.
// Exactly one of the two must be provided.
func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title != "" {
		app.createMovieFromTitle(w, r, title)
		return
	}

	if r.ContentLength == 0 {
		app.badRequestResponse(w, r, errors.New("either a 'title' query parameter or movie fields in the request body must be provided"))
		return
	}

	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movies.Create(r.Context(), toMovieData(input))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateImdbID):
			app.errorResponse(w, r, http.StatusUnprocessableEntity, domain.ErrDuplicateImdbID.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) createMovieFromTitle(w http.ResponseWriter, r *http.Request, title string) {
	movie, err := app.movies.CreateFromTitle(r.Context(), title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLookupNotFound):
			app.movieNotFoundResponse(w, r)
		case errors.Is(err, domain.ErrUpstream):
			app.upstreamErrorResponse(w, r, err)
		case errors.Is(err, domain.ErrDuplicateImdbID):
			app.errorResponse(w, r, http.StatusUnprocessableEntity, domain.ErrDuplicateImdbID.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movies.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.movieNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	page, err := readPositiveQueryInt(r, "page", DefaultPage)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("page number must be an integer greater than 0"))
		return
	}

	limit, err := readPositiveQueryInt(r, "limit", DefaultLimit)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("limit must be an integer greater than 0"))
		return
	}

	movies, metadata, err := app.movies.List(r.Context(), page, limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:     toMovieResponses(movies),
		TotalPages: metadata.LastPage,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SearchMovies(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		app.badRequestResponse(w, r, errors.New("title is required for searching"))
		return
	}

	movies, err := app.movies.Search(r.Context(), title)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(movies) == 0 {
		app.errorResponse(w, r, http.StatusNotFound, "Movies not found")
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponses(movies), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateMovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movies.Update(r.Context(), id, toMoviePatch(input))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.movieNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	identity := app.contextGetIdentity(r)

	deleted, err := app.movies.Delete(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !deleted {
		app.movieNotFoundResponse(w, r)
		return
	}

	app.logger.Info("movie deleted", "id", id, "deleted_by", identity.Username)

	err = app.writeJSON(w, http.StatusOK, api.DeleteMovieResponse{Detail: "Movie deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func readPositiveQueryInt(r *http.Request, key string, fallback int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, errors.New("must be a positive integer")
	}

	return parsed, nil
}

func toMovieData(input api.CreateMovieRequest) domain.MovieData {
	return domain.MovieData{
		Title:     input.Title,
		ImdbID:    input.ImdbID,
		Year:      input.Year,
		Type:      input.Type,
		PosterURL: input.PosterURL,
		Genre:     input.Genre,
		Director:  input.Director,
		Plot:      input.Plot,
	}
}

func toMoviePatch(input api.UpdateMovieRequest) domain.MoviePatch {
	return domain.MoviePatch{
		Title:     input.Title,
		Year:      input.Year,
		Type:      input.Type,
		PosterURL: input.PosterURL,
		Genre:     input.Genre,
		Director:  input.Director,
		Plot:      input.Plot,
	}
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	return api.MovieResponse{
		ID:        movie.ID,
		Title:     movie.Title,
		ImdbID:    movie.ImdbID,
		Year:      movie.Year,
		Type:      movie.Type,
		PosterURL: movie.PosterURL,
		Genre:     movie.Genre,
		Director:  movie.Director,
		Plot:      movie.Plot,
		CreatedAt: movie.CreatedAt,
		UpdatedAt: movie.UpdatedAt,
	}
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))

	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}
