// File: internal/university/repository.go
package university

import (
	"context"

	"unichoice_core/internal/platform/store"
)

// Persisted storage keys. The local list feeds every aggregated view; each
// representative additionally keeps a private copy of their own record under
// a per-owner key, which the editor loads.
const (
	keyLocalList   = "unichoice_all_universities"
	keyOwnerPrefix = "unichoice_uni_"
)

// Repository defines the interface for locally-authored university persistence.
type Repository interface {
	LocalList(ctx context.Context) []University
	SaveLocalList(ctx context.Context, list []University) error
	OwnerRecord(ctx context.Context, ownerID string) (*University, bool)
	SaveOwnerRecord(ctx context.Context, ownerID string, u *University) error
}

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository creates a university repository backed by the record store.
func NewStoreRepository(st *store.Store) Repository {
	return &storeRepository{store: st}
}

// LocalList returns the locally-authored university list in insertion order.
// An absent or corrupt record yields an empty list.
func (r *storeRepository) LocalList(ctx context.Context) []University {
	var list []University
	r.store.GetJSON(ctx, keyLocalList, &list)
	return list
}

// SaveLocalList overwrites the full local list.
func (r *storeRepository) SaveLocalList(ctx context.Context, list []University) error {
	return r.store.Set(ctx, keyLocalList, list)
}

// OwnerRecord returns the university record owned by ownerID, if any.
func (r *storeRepository) OwnerRecord(ctx context.Context, ownerID string) (*University, bool) {
	var u University
	if !r.store.GetJSON(ctx, keyOwnerPrefix+ownerID, &u) {
		return nil, false
	}
	return &u, true
}

// SaveOwnerRecord overwrites the record owned by ownerID. Saves are full
// overwrites, not patches.
func (r *storeRepository) SaveOwnerRecord(ctx context.Context, ownerID string, u *University) error {
	return r.store.Set(ctx, keyOwnerPrefix+ownerID, u)
}
