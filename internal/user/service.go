package user

import (
	"context"
	"time"

	"unichoice_core/internal/common"
	"unichoice_core/internal/config"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service owns signup, login, logout and profile updates for the single
// active session. Every operation is total: business-logic failures come back
// as false, never as an error.
type Service struct {
	repo     Repository
	cfg      *config.Config
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a new user service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
	}
}

// Signup registers a new account and opens a session for it. It fails when
// the request does not validate or when the directory already holds an entry
// with a case-sensitive-equal email. On success the returned user never
// carries the password.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*User, bool) {
	if err := s.validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			s.logger.Debug("Signup request failed validation",
				zap.Any("fields", common.FormatValidationErrors(verrs)))
		}
		return nil, false
	}

	dir := s.repo.Directory(ctx)
	for _, existing := range dir {
		if existing.Email == req.Email {
			s.logger.Info("Signup rejected: email already registered", zap.String("email", req.Email))
			return nil, false
		}
	}

	entry := CredentialedUser{
		User: User{
			ID:        common.NewID(),
			Email:     req.Email,
			Name:      req.Name,
			Role:      req.Role,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Password: req.Password,
	}

	dir = append(dir, entry)
	if err := s.repo.SaveDirectory(ctx, dir); err != nil {
		s.logger.Error("Failed to persist user directory during signup", zap.Error(err))
		return nil, false
	}

	// Auto login after signup.
	session := entry.Sanitize()
	if err := s.repo.SaveSession(ctx, &session); err != nil {
		s.logger.Error("Failed to persist session after signup", zap.Error(err), zap.String("userID", session.ID))
		return nil, false
	}

	s.logger.Info("User registered successfully", zap.String("userID", session.ID))
	return &session, true
}

// Login scans the directory for an exact (email, password) match and opens a
// session for it. A failed login never reveals which of the two fields was
// wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*User, bool) {
	for _, entry := range s.repo.Directory(ctx) {
		if entry.Email == email && entry.Password == password {
			session := entry.Sanitize()
			if err := s.repo.SaveSession(ctx, &session); err != nil {
				s.logger.Error("Failed to persist session on login", zap.Error(err), zap.String("userID", session.ID))
				return nil, false
			}
			s.logger.Info("User logged in successfully", zap.String("userID", session.ID))
			return &session, true
		}
	}
	s.logger.Info("Login rejected: invalid email or password")
	return nil, false
}

// Current returns the active session user, if one exists.
func (s *Service) Current(ctx context.Context) (*User, bool) {
	return s.repo.Session(ctx)
}

// UpdateUser merges the patch into both the session user and the matching
// directory entry. It requires an active session. A session whose id no
// longer appears in the directory still gets its session copy updated,
// matching the behavior of the original data layer.
func (s *Service) UpdateUser(ctx context.Context, patch Patch) bool {
	session, ok := s.repo.Session(ctx)
	if !ok {
		s.logger.Debug("UpdateUser rejected: no active session")
		return false
	}

	patch.apply(session)
	if err := s.repo.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to persist patched session", zap.Error(err), zap.String("userID", session.ID))
		return false
	}

	dir := s.repo.Directory(ctx)
	for i := range dir {
		if dir[i].ID == session.ID {
			patch.apply(&dir[i].User)
			if err := s.repo.SaveDirectory(ctx, dir); err != nil {
				s.logger.Error("Failed to persist patched directory entry", zap.Error(err), zap.String("userID", session.ID))
				return false
			}
			break
		}
	}
	return true
}

// Logout clears the session record only; the directory is untouched.
func (s *Service) Logout(ctx context.Context) {
	if err := s.repo.ClearSession(ctx); err != nil {
		s.logger.Error("Failed to clear session on logout", zap.Error(err))
	}
}
