package repositories

import (
	"context"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
)

// CommentRepository persists message comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	FindByID(ctx context.Context, id string) (*entities.Comment, error)
	// ListForMessage returns a message's comments, oldest first.
	ListForMessage(ctx context.Context, messageID string) ([]*entities.Comment, error)
}
