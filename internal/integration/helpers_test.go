package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"request_id": {},
	"created_at": {},
	"updated_at": {},
	"id":         {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
		if list, ok := m[k].([]any); ok {
			for _, item := range list {
				if nested, ok := item.(map[string]any); ok {
					cleanMap(nested)
				}
			}
		}
	}
}

func flushCache(t testing.TB, app *TestApp) {
	t.Helper()

	require.NoError(t, app.Cache.FlushDB(context.Background()).Err())
}

func truncateMovies(t testing.TB, app *TestApp) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(), "TRUNCATE movies RESTART IDENTITY")
	require.NoError(t, err)
}

func insertMovie(t testing.TB, app *TestApp, data domain.MovieData) int {
	t.Helper()

	var id int

	err := app.DB.QueryRow(
		context.Background(),
		`INSERT INTO movies (title, imdb_id, year, type, poster_url, genre, director, plot)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		data.Title, data.ImdbID, data.Year, data.Type, data.PosterURL, data.Genre, data.Director, data.Plot,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func countMovies(t testing.TB, app *TestApp) int {
	t.Helper()

	var count int

	err := app.DB.QueryRow(context.Background(), "SELECT count(*) FROM movies").Scan(&count)
	require.NoError(t, err)

	return count
}

func movieExists(t testing.TB, app *TestApp, imdbID string) bool {
	t.Helper()

	var exists bool

	err := app.DB.QueryRow(
		context.Background(),
		"SELECT EXISTS (SELECT 1 FROM movies WHERE imdb_id = $1)",
		imdbID,
	).Scan(&exists)
	require.NoError(t, err)

	return exists
}
