package domain

import "slices"

// Identity is the caller resolved from a bearer token. It is not persisted;
// the catalog only needs it to gate destructive operations.
type Identity struct {
	ID       int
	Username string
	Roles    []string
	Active   bool
}

func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// IdentityStore resolves bearer tokens to identities. Implementations decide
// how tokens are stored and compared; the gate logic never sees raw tables.
type IdentityStore interface {
	ByToken(token string) (*Identity, bool)
}
