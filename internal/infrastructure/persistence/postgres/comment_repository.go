package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
	"github.com/userdash/dashboard-backend/internal/domain/repositories"
)

// CommentRepository implements repositories.CommentRepository.
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	model := &CommentModel{
		ID:          comment.ID,
		Description: comment.Description,
		SenderID:    comment.SenderID,
		ReceiverID:  comment.ReceiverID,
		MessageID:   comment.MessageID,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Sender", "Receiver", "Message").Create(model).Error; err != nil {
		return err
	}

	comment.ID = model.ID
	comment.CreatedAt = time.Unix(model.CreatedAt, 0)
	comment.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*entities.Comment, error) {
	var model CommentModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return commentToEntity(&model), nil
}

func (r *CommentRepository) ListForMessage(ctx context.Context, messageID string) ([]*entities.Comment, error) {
	var models []*CommentModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Where("message_id = ?", messageID).
		Order("created_at asc").
		Preload("Sender").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entities.Comment, 0, len(models))
	for _, model := range models {
		comments = append(comments, commentToEntity(model))
	}
	return comments, nil
}

func commentToEntity(model *CommentModel) *entities.Comment {
	comment := &entities.Comment{
		ID:          model.ID,
		Description: model.Description,
		SenderID:    model.SenderID,
		ReceiverID:  model.ReceiverID,
		MessageID:   model.MessageID,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
	if model.Sender.ID != "" {
		comment.Sender = userToEntity(&model.Sender)
	}
	return comment
}
