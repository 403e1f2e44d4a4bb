package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/userdash/dashboard-backend/internal/domain/errors"
	"github.com/userdash/dashboard-backend/internal/domain/repositories"
)

// UserRepository implements repositories.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := userToModel(user)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	// Exact, case-sensitive match.
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := userToModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// Delete removes the user and everything they own: comments they sent
// or received, comments on messages they own, the messages themselves,
// then the user row. Run inside a unit of work so the cascade is
// all-or-nothing even when the store has no FK enforcement.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)

	ownedMessages := db.Model(&MessageModel{}).
		Select("id").
		Where("sender_id = ? OR receiver_id = ?", id, id)

	if err := db.
		Where("sender_id = ? OR receiver_id = ? OR message_id IN (?)", id, id, ownedMessages).
		Delete(&CommentModel{}).Error; err != nil {
		return err
	}
	if err := db.
		Where("sender_id = ? OR receiver_id = ?", id, id).
		Delete(&MessageModel{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&UserModel{}).Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	db := dbFromContext(ctx, r.db)
	if err := db.Model(&UserModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("last_name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(models))
	for _, model := range models {
		users = append(users, userToEntity(model))
	}
	return users, nil
}

func userToModel(user *entities.User) *UserModel {
	model := &UserModel{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Description:  user.Description,
		UserLevel:    int(user.Level),
	}
	// Zero timestamps stay zero so autoCreateTime/autoUpdateTime fill them.
	if !user.CreatedAt.IsZero() {
		model.CreatedAt = user.CreatedAt.Unix()
	}
	if !user.UpdatedAt.IsZero() {
		model.UpdatedAt = user.UpdatedAt.Unix()
	}
	return model
}

func userToEntity(model *UserModel) *entities.User {
	return &entities.User{
		ID:           model.ID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Description:  model.Description,
		Level:        entities.UserLevel(model.UserLevel),
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}
