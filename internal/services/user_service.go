package services

import (
	"context"
	"errors"

	"github.com/userdash/dashboard-backend/internal/domain"
	"github.com/userdash/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/userdash/dashboard-backend/internal/domain/errors"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
	"github.com/userdash/dashboard-backend/internal/domain/repositories"
	"github.com/userdash/dashboard-backend/internal/domain/validation"
)

// FounderAdminLimit is how many of the earliest registered users the
// registration caller promotes to administrator.
const FounderAdminLimit = 5

// UserService holds the validation and mutation rules for user records.
type UserService struct {
	userRepo repositories.UserRepository
	uow      domain.UnitOfWork
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repositories.UserRepository,
	uow domain.UnitOfWork,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		logger:   logger,
	}
}

// RegisterInput is the registration form payload.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	ConfirmPwd string
}

// Register validates a registration payload, accumulating every
// applicable failure, and on success persists a new NORMAL-level user
// with a hashed password. Exactly one store write happens on success,
// none on failure.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	var errs validation.Collector

	errs.CheckNames(input.FirstName, input.LastName)

	// The duplicate lookup runs only once length and format both pass:
	// a too-short or malformed email never reports "already registered".
	if len(input.Email) < validation.MinEmailLen {
		errs.Add(validation.MsgEmailTooShort)
	} else if !validation.EmailFormatValid(input.Email) {
		errs.Add(validation.MsgEmailInvalid)
	} else {
		existing, err := s.userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			errs.Add(validation.MsgEmailTaken)
		}
	}

	errs.CheckPassword(input.Password, input.ConfirmPwd)

	if errs.HasErrors() {
		s.logger.Warn("registration rejected",
			"email", input.Email,
			"errors", errs.Messages(),
		)
		return nil, domainerrors.NewValidation(errs.Messages()...)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Description:  entities.DefaultDescription,
		Level:        entities.LevelNormal,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is the authority on uniqueness: a concurrent
		// registration that slipped past the lookup lands here.
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			s.logger.Warn("registration lost uniqueness race", "email", input.Email)
			return nil, domainerrors.NewValidation(validation.MsgEmailTaken)
		}
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"email", user.Email,
	)
	return user, nil
}

// MaybePromoteFounder raises a freshly registered user to ADMIN while
// the total user count is within FounderAdminLimit. The registration
// core itself always creates NORMAL users; this is the caller-side
// promotion step.
func (s *UserService) MaybePromoteFounder(ctx context.Context, userID string) (bool, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > FounderAdminLimit {
		return false, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, domainerrors.ErrUserNotFound
	}

	user.Level = entities.LevelAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return false, err
	}

	s.logger.Info("founder promoted to admin", "user_id", user.ID, "user_count", count)
	return true, nil
}

// ProfileUpdateInput is the profile edit payload. EditUserID and Level
// are only honored on the admin edit-other-user path.
type ProfileUpdateInput struct {
	FirstName  string
	LastName   string
	Email      string
	EditUserID *string
	Level      *entities.UserLevel
}

// UpdateProfile validates and applies a profile edit. A NORMAL actor
// may only edit themself; an ADMIN with EditUserID edits the target
// user, and only that path may change the user level.
func (s *UserService) UpdateProfile(ctx context.Context, actor domain.Actor, input ProfileUpdateInput) (*entities.User, error) {
	targetID := actor.UserID
	if input.EditUserID != nil {
		targetID = *input.EditUserID
	}
	if targetID != actor.UserID && !actor.IsAdmin() {
		s.logger.Warn("profile edit forbidden",
			"actor_id", actor.UserID,
			"target_id", targetID,
		)
		return nil, domainerrors.ErrForbidden
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	var errs validation.Collector
	errs.CheckNames(input.FirstName, input.LastName)

	if len(input.Email) < validation.MinEmailLen {
		errs.Add(validation.MsgEmailTooShort)
	} else if input.Email != target.Email {
		// Format and duplicate checks run only when the email actually
		// changes; re-submitting the current email is a no-op.
		if !validation.EmailFormatValid(input.Email) {
			errs.Add(validation.MsgEmailInvalid)
		} else {
			existing, err := s.userRepo.FindByEmail(ctx, input.Email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				errs.Add(validation.MsgEmailTaken)
			}
		}
	}

	if errs.HasErrors() {
		s.logger.Warn("profile update rejected",
			"actor_id", actor.UserID,
			"target_id", targetID,
			"errors", errs.Messages(),
		)
		return nil, domainerrors.NewValidation(errs.Messages()...)
	}

	target.FirstName = input.FirstName
	target.LastName = input.LastName
	target.Email = input.Email

	// The admin edit-other-user branch is the only path that can change
	// the user level.
	if actor.IsAdmin() && input.EditUserID != nil && input.Level != nil && input.Level.Valid() {
		target.Level = *input.Level
	}

	if err := s.userRepo.Update(ctx, target); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			return nil, domainerrors.NewValidation(validation.MsgEmailTaken)
		}
		return nil, err
	}

	s.logger.Info("profile updated",
		"actor_id", actor.UserID,
		"target_id", target.ID,
	)
	return target, nil
}

// PasswordUpdateInput is the password change payload.
type PasswordUpdateInput struct {
	Password   string
	ConfirmPwd string
	EditUserID *string
}

// UpdatePassword validates and applies a password change against the
// actor, or against EditUserID when an ADMIN resets another account.
func (s *UserService) UpdatePassword(ctx context.Context, actor domain.Actor, input PasswordUpdateInput) (*entities.User, error) {
	targetID := actor.UserID
	if input.EditUserID != nil {
		targetID = *input.EditUserID
	}
	if targetID != actor.UserID && !actor.IsAdmin() {
		s.logger.Warn("password edit forbidden",
			"actor_id", actor.UserID,
			"target_id", targetID,
		)
		return nil, domainerrors.ErrForbidden
	}

	var errs validation.Collector
	errs.CheckPassword(input.Password, input.ConfirmPwd)
	if errs.HasErrors() {
		return nil, domainerrors.NewValidation(errs.Messages()...)
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	target.PasswordHash = hash

	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	s.logger.Info("password updated",
		"actor_id", actor.UserID,
		"target_id", target.ID,
	)
	return target, nil
}

// UpdateDescription persists the actor's profile description verbatim.
// Empty is allowed; anything over the limit is rejected.
func (s *UserService) UpdateDescription(ctx context.Context, actor domain.Actor, description string) (*entities.User, error) {
	if len(description) > validation.MaxDescriptionLen {
		return nil, domainerrors.NewValidation(validation.MsgDescriptionLong)
	}

	target, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	target.Description = description
	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	s.logger.Info("description updated", "user_id", target.ID)
	return target, nil
}

// DeleteUser removes a user and, in the same transaction, every message
// and comment they sent or received. Admin only; self-deletion is
// always refused.
func (s *UserService) DeleteUser(ctx context.Context, actor domain.Actor, targetID string) error {
	if !actor.IsAdmin() {
		s.logger.Warn("user delete forbidden", "actor_id", actor.UserID, "target_id", targetID)
		return domainerrors.ErrForbidden
	}
	if targetID == actor.UserID {
		return domainerrors.ErrSelfDelete
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domainerrors.ErrUserNotFound
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.userRepo.Delete(txCtx, targetID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted",
		"actor_id", actor.UserID,
		"target_id", targetID,
		"email", target.Email,
	)
	return nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns all users ordered by last name. Password hashes are
// blanked unless the actor is an administrator.
func (s *UserService) ListUsers(ctx context.Context, actor domain.Actor) ([]*entities.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		for _, u := range users {
			u.PasswordHash = ""
		}
	}
	return users, nil
}
