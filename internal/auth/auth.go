// Package auth implements the bearer-token authorization gate. The bundled
// store is a static table; real deployments swap in an identity service by
// providing another domain.IdentityStore.
package auth

import (
	"crypto/sha256"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

type Authenticator struct {
	store domain.IdentityStore
}

func NewAuthenticator(store domain.IdentityStore) *Authenticator {
	return &Authenticator{
		store: store,
	}
}

// Authenticate resolves a bearer token to an identity. Unknown tokens and
// inactive identities both fail the same way, so callers cannot probe which
// tokens exist.
func (a *Authenticator) Authenticate(token string) (*domain.Identity, error) {
	identity, ok := a.store.ByToken(token)
	if !ok || !identity.Active {
		return nil, domain.ErrUnauthenticated
	}

	return identity, nil
}

// RequireRole passes the identity through unchanged when it holds the role.
func (a *Authenticator) RequireRole(identity *domain.Identity, role string) (*domain.Identity, error) {
	if !identity.HasRole(role) {
		return nil, domain.ErrForbidden
	}

	return identity, nil
}

// StaticIdentityStore maps SHA-256 digests of tokens to identities. Tokens
// are digested on construction so raw values never sit in memory longer than
// needed.
type StaticIdentityStore struct {
	identities map[[sha256.Size]byte]domain.Identity
}

func NewStaticIdentityStore(tokens map[string]domain.Identity) *StaticIdentityStore {
	identities := make(map[[sha256.Size]byte]domain.Identity, len(tokens))

	for token, identity := range tokens {
		identities[sha256.Sum256([]byte(token))] = identity
	}

	return &StaticIdentityStore{
		identities: identities,
	}
}

func (s *StaticIdentityStore) ByToken(token string) (*domain.Identity, bool) {
	identity, ok := s.identities[sha256.Sum256([]byte(token))]
	if !ok {
		return nil, false
	}

	return &identity, true
}

// DefaultIdentityStore returns the placeholder token table.
func DefaultIdentityStore() *StaticIdentityStore {
	return NewStaticIdentityStore(map[string]domain.Identity{
		"token123": {ID: 1, Username: "admin_user", Roles: []string{"admin"}, Active: true},
		"token456": {ID: 2, Username: "regular_user", Roles: []string{"user"}, Active: true},
	})
}
