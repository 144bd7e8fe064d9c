// File: internal/compare/service.go
package compare

import (
	"context"

	"unichoice_core/internal/config"
	"unichoice_core/internal/platform/store"
	"unichoice_core/internal/university"

	"go.uber.org/zap"
)

const keyCompare = "unichoice_compare"

// AddResult reports the outcome of adding an id to the compare set.
type AddResult string

const (
	AddOK             AddResult = "ok"
	AddAtCapacity     AddResult = "at_capacity"
	AddAlreadyPresent AddResult = "already_present"
)

// Service maintains the ordered set of university ids selected for
// side-by-side comparison. The set never exceeds the configured cap and
// never holds duplicates. Reads always go back to the record store, so
// concurrent viewers converge at read time.
type Service struct {
	store  *store.Store
	cfg    *config.Config
	logger *zap.Logger
}

// NewService creates a new comparison set service.
func NewService(st *store.Store, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{store: st, cfg: cfg, logger: logger}
}

// Add appends id to the compare set unless the set is at capacity or already
// holds it.
func (s *Service) Add(ctx context.Context, id string) AddResult {
	ids := s.List(ctx)
	for _, existing := range ids {
		if existing == id {
			return AddAlreadyPresent
		}
	}
	if len(ids) >= s.cfg.CompareLimit {
		return AddAtCapacity
	}

	ids = append(ids, id)
	if err := s.store.Set(ctx, keyCompare, ids); err != nil {
		// Storage failures degrade silently; the set simply stays as it was.
		s.logger.Error("Failed to persist compare set", zap.Error(err))
	}
	return AddOK
}

// Remove filters id out of the set. Removing an absent id is a no-op, not an
// error.
func (s *Service) Remove(ctx context.Context, id string) {
	ids := s.List(ctx)
	kept := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if err := s.store.Set(ctx, keyCompare, kept); err != nil {
		s.logger.Error("Failed to persist compare set", zap.Error(err))
	}
}

// List returns the current persisted set, read fresh on every call.
func (s *Service) List(ctx context.Context) []string {
	var ids []string
	s.store.GetJSON(ctx, keyCompare, &ids)
	return ids
}

// Selected joins the compare set against an aggregated list, preserving the
// list's order. Ids that resolve to no university are skipped.
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
