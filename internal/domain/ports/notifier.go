package ports

import "github.com/userdash/dashboard-backend/internal/domain/entities"

// Notifier fans out wall activity to connected clients. Implementations
// must not block the calling request.
type Notifier interface {
	MessageCreated(message *entities.Message)
	CommentCreated(comment *entities.Comment)
}
