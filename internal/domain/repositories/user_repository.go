package repositories

import (
	"context"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	// FindByEmail matches the stored email exactly (case-sensitive).
	// A missing user is (nil, nil), not an error.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// Delete removes the user together with every message and comment
	// they sent or received.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// List returns all users ordered by last name.
	List(ctx context.Context) ([]*entities.User, error)
}
