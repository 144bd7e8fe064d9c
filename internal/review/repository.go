// File: internal/review/repository.go
package review

import (
	"context"

	"unichoice_core/internal/platform/store"
)

const keyLocalReviews = "unichoice_reviews"

// Repository defines the interface for locally-authored review persistence.
type Repository interface {
	LocalList(ctx context.Context) []Review
	SaveLocalList(ctx context.Context, list []Review) error
}

type storeRepository struct {
	store *store.Store
}

// NewStoreRepository creates a review repository backed by the record store.
func NewStoreRepository(st *store.Store) Repository {
	return &storeRepository{store: st}
}

// LocalList returns all locally-authored reviews across universities. An
// absent or corrupt record yields an empty list.
func (r *storeRepository) LocalList(ctx context.Context) []Review {
	var list []Review
	r.store.GetJSON(ctx, keyLocalReviews, &list)
	return list
}

// SaveLocalList overwrites the full local review list.
func (r *storeRepository) SaveLocalList(ctx context.Context, list []Review) error {
	return r.store.Set(ctx, keyLocalReviews, list)
}
