package services

import (
	"context"
	"errors"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/userdash/dashboard-backend/internal/domain/errors"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
	"github.com/userdash/dashboard-backend/internal/domain/repositories"
	"github.com/userdash/dashboard-backend/internal/domain/validation"
)

// AuthService verifies login credentials.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// LoginInput is the login form payload.
type LoginInput struct {
	Email    string
	Password string
}

// Login validates credentials and returns the matched user without
// mutating anything. Unknown email and wrong password both fail with
// the same generic message so accounts cannot be enumerated; only a
// malformed stored hash yields a distinct message.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*entities.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.NewValidation(validation.MsgAllFieldsNeeded)
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Warn("login failed", "reason", "unknown email", "email", input.Email)
		return nil, domainerrors.NewValidation(validation.MsgLoginInvalid)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, ports.ErrCorruptHash) {
			s.logger.Error("login refused for corrupt stored hash", "user_id", user.ID)
			return nil, domainerrors.NewValidation(validation.MsgAccountCorrupt)
		}
		s.logger.Warn("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, domainerrors.NewValidation(validation.MsgLoginInvalid)
	}

	s.logger.Info("login succeeded", "user_id", user.ID)
	return user, nil
}
