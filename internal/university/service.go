// File: internal/university/service.go
package university

import (
	"context"
	"math"

	"unichoice_core/internal/catalog"
	"unichoice_core/internal/common"
	"unichoice_core/internal/config"
	"unichoice_core/internal/user"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service aggregates the static catalog with locally-authored records and
// owns the representative editor's save path.
type Service struct {
	repo     Repository
	source   *catalog.Source
	users    *user.Service
	cfg      *config.Config
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a new university service. The static catalog source is
// built from configuration; a blank source location means an empty catalog.
func NewService(repo Repository, users *user.Service, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		source:   catalog.NewSource(cfg.UniversitiesCatalogSource, cfg.CatalogFetchTimeout, logger),
		users:    users,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
	}
}

// LoadAll produces the authoritative aggregated list: static catalog entries
// first in catalog order, then local entries in insertion order, deduplicated
// by id with last occurrence winning. A failed catalog fetch contributes an
// empty list; the load itself never fails.
func (s *Service) LoadAll(ctx context.Context) []University {
	var static []University
	s.source.Fetch(ctx, &static)
	local := s.repo.LocalList(ctx)
	return MergeByID(static, local)
}

// FindByID scans the aggregated list for id.
func (s *Service) FindByID(ctx context.Context, id string) (*University, bool) {
	for _, u := range s.LoadAll(ctx) {
		if u.ID == id {
			return &u, true
		}
	}
	return nil, false
}

// Mine returns the active representative's own record, if one has been saved.
func (s *Service) Mine(ctx context.Context) (*University, bool) {
	session, ok := s.users.Current(ctx)
	if !ok || session.Role != user.RoleUniversity {
		return nil, false
	}
	return s.repo.OwnerRecord(ctx, session.ID)
}

// Save stores the representative's record as a full overwrite. The record id
// always equals the owner's user id; on first save the owner's account is
// linked to it. Requires an active university-representative session and a
// draft that validates.
func (s *Service) Save(ctx context.Context, draft University) (*University, bool) {
	session, ok := s.users.Current(ctx)
	if !ok {
		s.logger.Debug("University save rejected: no active session")
		return nil, false
	}
	if session.Role != user.RoleUniversity {
		s.logger.Info("University save rejected: session is not a representative",
			zap.String("userID", session.ID), zap.String("role", string(session.Role)))
		return nil, false
	}

	draft.ID = session.ID
	if draft.Rating == 0 {
		draft.Rating = s.cfg.DefaultRating
	}
	if draft.Programs == nil {
		draft.Programs = []Program{}
	}
	if draft.Images == nil {
		draft.Images = []string{}
	}
	s.assignChildIDs(&draft)

	if len(draft.Images) > s.cfg.MaxImagesPer {
		s.logger.Info("University save rejected: too many profile images",
			zap.String("userID", session.ID), zap.Int("count", len(draft.Images)))
		return nil, false
	}
	for _, c := range draft.Campuses {
		if len(c.Images) > s.cfg.MaxImagesPer {
			s.logger.Info("University save rejected: too many campus images",
				zap.String("userID", session.ID), zap.String("campus", c.Name))
			return nil, false
		}
	}

	if err := s.validate.Struct(draft); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			s.logger.Info("University save failed validation",
				zap.String("userID", session.ID),
				zap.Any("fields", common.FormatValidationErrors(verrs)))
		}
		return nil, false
	}

	if err := s.repo.SaveOwnerRecord(ctx, session.ID, &draft); err != nil {
		s.logger.Error("Failed to persist owner university record", zap.Error(err), zap.String("userID", session.ID))
		return nil, false
	}

	// Link the account to its record. Harmless on repeat saves.
	uniID := draft.ID
	s.users.UpdateUser(ctx, user.Patch{UniversityID: &uniID})

	// Upsert into the shared local list so every aggregated view sees it.
	list := s.repo.LocalList(ctx)
	replaced := false
	for i := range list {
		if list[i].ID == draft.ID {
			list[i] = draft
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, draft)
	}
	if err := s.repo.SaveLocalList(ctx, list); err != nil {
		s.logger.Error("Failed to persist local university list", zap.Error(err), zap.String("userID", session.ID))
		return nil, false
	}

	s.logger.Info("University record saved", zap.String("universityID", draft.ID))
	return &draft, true
}

// ComputeStats summarizes an aggregated list: total records, distinct cities,
// total programs and the mean rating (0 when the list is empty).
func ComputeStats(list []University) Stats {
	stats := Stats{Total: len(list)}
	cities := make(map[string]struct{})
	var ratingSum float64
	for _, u := range list {
		cities[u.City] = struct{}{}
		stats.Programs += len(u.Programs)
		ratingSum += u.Rating
	}
	stats.Cities = len(cities)
	if len(list) > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(len(list))*10) / 10
	}
	return stats
}

func (s *Service) assignChildIDs(u *University) {
	for i := range u.Programs {
		if u.Programs[i].ID == "" {
			u.Programs[i].ID = common.NewChildID()
		}
	}
	for i := range u.Campuses {
		if u.Campuses[i].ID == "" {
			u.Campuses[i].ID = common.NewChildID()
		}
	}
	for i := range u.Faculties {
		if u.Faculties[i].ID == "" {
			u.Faculties[i].ID = common.NewChildID()
		}
	}
}
