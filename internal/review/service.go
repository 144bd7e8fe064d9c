// File: internal/review/service.go
package review

import (
	"context"
	"strings"
	"time"

	"unichoice_core/internal/catalog"
	"unichoice_core/internal/common"
	"unichoice_core/internal/config"
	"unichoice_core/internal/user"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Service reads the merged review view and appends reviews, replies and
// helpful votes to the local list. Seed reviews and local reviews are assumed
// disjoint by dataset convention; no dedupe by id is performed.
type Service struct {
	repo     Repository
	source   *catalog.Source
	users    *user.Service
	cfg      *config.Config
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a new review service.
func NewService(repo Repository, users *user.Service, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		source:   catalog.NewSource(cfg.ReviewsCatalogSource, cfg.CatalogFetchTimeout, logger),
		users:    users,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
	}
}

// ListForUniversity returns the seed reviews followed by the local reviews,
// filtered by uniID. A failed seed fetch contributes nothing.
func (s *Service) ListForUniversity(ctx context.Context, uniID string) []Review {
	var seed []Review
	s.source.Fetch(ctx, &seed)

	all := append(seed, s.repo.LocalList(ctx)...)
	matched := make([]Review, 0, len(all))
	for _, r := range all {
		if r.UniID == uniID {
			matched = append(matched, r)
		}
	}
	return matched
}

// ListByAuthor returns the active session user's own local reviews.
func (s *Service) ListByAuthor(ctx context.Context) []Review {
	session, ok := s.users.Current(ctx)
	if !ok {
		return nil
	}
	var mine []Review
	for _, r := range s.repo.LocalList(ctx) {
		if r.UserID == session.ID {
			mine = append(mine, r)
		}
	}
	return mine
}

// AddReview appends a review authored by the active session user. The rating
// must be 1 to 5 and the comment non-blank.
func (s *Service) AddReview(ctx context.Context, uniID string, rating int, comment string) (*Review, bool) {
	session, ok := s.users.Current(ctx)
	if !ok {
		s.logger.Debug("Review rejected: no active session")
		return nil, false
	}
	if strings.TrimSpace(comment) == "" {
		return nil, false
	}

	rev := Review{
		ID:      common.NewChildID(),
		UniID:   uniID,
		Author:  session.Name,
		UserID:  session.ID,
		Rating:  rating,
		Comment: comment,
		Date:    time.Now().Format(dateLayout),
	}
	if err := s.validate.Struct(rev); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			s.logger.Info("Review failed validation",
				zap.Any("fields", common.FormatValidationErrors(verrs)))
		}
		return nil, false
	}

	list := append(s.repo.LocalList(ctx), rev)
	if err := s.repo.SaveLocalList(ctx, list); err != nil {
		s.logger.Error("Failed to persist review", zap.Error(err), zap.String("uniID", uniID))
		return nil, false
	}
	return &rev, true
}

// AddReply appends a reply to the review with reviewID. The author is the
// active session user; IsUniversityReply is set iff the session role is
// university. Only the local review list is scanned: replying to a review
// that exists only in the seed file is a silent no-op.
func (s *Service) AddReply(ctx context.Context, reviewID, comment string) (*ReviewReply, bool) {
	session, ok := s.users.Current(ctx)
	if !ok {
		s.logger.Debug("Reply rejected: no active session")
		return nil, false
	}
	if strings.TrimSpace(comment) == "" {
		return nil, false
	}

	reply := ReviewReply{
		ID:                common.NewChildID(),
		ReviewID:          reviewID,
		Author:            session.Name,
		Comment:           comment,
		Date:              time.Now().Format(dateLayout),
		IsUniversityReply: session.Role == user.RoleUniversity,
	}

	list := s.repo.LocalList(ctx)
	for i := range list {
		if list[i].ID == reviewID {
			list[i].Replies = append(list[i].Replies, reply)
			if err := s.repo.SaveLocalList(ctx, list); err != nil {
				s.logger.Error("Failed to persist reply", zap.Error(err), zap.String("reviewID", reviewID))
				return nil, false
			}
			return &reply, true
		}
	}

	s.logger.Debug("Reply dropped: review not in local list", zap.String("reviewID", reviewID))
	return nil, false
}

// MarkHelpful increments the helpful counter of a local review. Seed reviews
// cannot be voted on; the attempt is a no-op.
func (s *Service) MarkHelpful(ctx context.Context, reviewID string) bool {
	list := s.repo.LocalList(ctx)
	for i := range list {
		if list[i].ID == reviewID {
			list[i].HelpfulCount++
			if err := s.repo.SaveLocalList(ctx, list); err != nil {
				s.logger.Error("Failed to persist helpful vote", zap.Error(err), zap.String("reviewID", reviewID))
				return false
			}
			return true
		}
	}
	return false
}
