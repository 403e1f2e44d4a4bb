package repositories

import (
	"context"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
)

// MessageRepository persists wall messages.
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	FindByID(ctx context.Context, id string) (*entities.Message, error)
	// ListReceived returns messages addressed to a user, newest first,
	// with sender and comments preloaded.
	ListReceived(ctx context.Context, receiverID string) ([]*entities.Message, error)
	// Delete removes the message and its comments.
	Delete(ctx context.Context, id string) error
}
