package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

type contextKey string

const identityContextKey = contextKey("identity")

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireRole authenticates the bearer token and checks the role before the
// wrapped handler runs. The resolved identity is stored on the request
// context for handlers that want it.
func (app *Application) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				app.unauthorizedResponse(w, r)
				return
			}

			identity, err := app.authenticator.Authenticate(token)
			if err != nil {
				app.unauthorizedResponse(w, r)
				return
			}

			_, err = app.authenticator.RequireRole(identity, role)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					app.forbiddenResponse(w, r)
					return
				}

				app.serverErrorResponse(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (app *Application) contextGetIdentity(r *http.Request) *domain.Identity {
	identity, ok := r.Context().Value(identityContextKey).(*domain.Identity)
	if !ok {
		panic("missing identity in request context")
	}

	return identity
}
