// File: internal/user/repository.go
package user

import (
	"context"

	"unichoice_core/internal/platform/store"
)

// Persisted storage keys. The directory is the system of record for login;
// the session key holds the currently authenticated (password-stripped) user.
const (
	keyDirectory = "unichoice_users"
	keySession   = "unichoice_user"
)

// Repository defines the interface for user persistence operations.
type Repository interface {
	Directory(ctx context.Context) []CredentialedUser
	SaveDirectory(ctx context.Context, dir []CredentialedUser) error
	Session(ctx context.Context) (*User, bool)
	SaveSession(ctx context.Context, u *User) error
	ClearSession(ctx context.Context) error
}

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository creates a user repository backed by the record store.
func NewStoreRepository(st *store.Store) Repository {
	return &storeRepository{store: st}
}

// Directory returns the full list of credentialed users. An absent or
// corrupt directory record yields an empty list.
func (r *storeRepository) Directory(ctx context.Context) []CredentialedUser {
	var dir []CredentialedUser
	r.store.GetJSON(ctx, keyDirectory, &dir)
	return dir
}

// SaveDirectory overwrites the full directory list.
func (r *storeRepository) SaveDirectory(ctx context.Context, dir []CredentialedUser) error {
	return r.store.Set(ctx, keyDirectory, dir)
}

// Session returns the current session user, if any.
func (r *storeRepository) Session(ctx context.Context) (*User, bool) {
	var u User
	if !r.store.GetJSON(ctx, keySession, &u) {
		return nil, false
	}
	return &u, true
}

// SaveSession persists u as the current session user.
func (r *storeRepository) SaveSession(ctx context.Context, u *User) error {
	return r.store.Set(ctx, keySession, u)
}

// ClearSession removes the session record only; the directory is untouched.
func (r *storeRepository) ClearSession(ctx context.Context) error {
	return r.store.Remove(ctx, keySession)
}
