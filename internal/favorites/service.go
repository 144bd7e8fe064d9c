// File: internal/favorites/service.go
package favorites

import (
	"context"

	"unichoice_core/internal/platform/store"
	"unichoice_core/internal/university"

	"go.uber.org/zap"
)

const keyFavorites = "unichoice_favorites"

// Service maintains the persisted list of favorited university ids.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a new favorites service.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Toggle flips the favorited state of id and returns the new state.
func (s *Service) Toggle(ctx context.Context, id string) bool {
	ids := s.List(ctx)
	kept := make([]string, 0, len(ids))
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		kept = append(kept, id)
	}
	if err := s.store.Set(ctx, keyFavorites, kept); err != nil {
		s.logger.Error("Failed to persist favorites", zap.Error(err))
	}
	return !removed
}

// IsFavorite reports whether id is currently favorited.
func (s *Service) IsFavorite(ctx context.Context, id string) bool {
	for _, existing := range s.List(ctx) {
		if existing == id {
			return true
		}
	}
	return false
}

// List returns the favorited ids in insertion order, read fresh each call.
func (s *Service) List(ctx context.Context) []string {
	var ids []string
	s.store.GetJSON(ctx, keyFavorites, &ids)
	return ids
}

// Selected joins the favorites against an aggregated list, preserving the
// list's order.
func Selected(ids []string, list []university.University) []university.University {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	selected := make([]university.University, 0, len(ids))
	for _, u := range list {
		if _, ok := want[u.ID]; ok {
			selected = append(selected, u)
		}
	}
	return selected
}
