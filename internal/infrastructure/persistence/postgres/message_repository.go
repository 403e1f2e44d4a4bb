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

// MessageRepository implements repositories.MessageRepository.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	model := &MessageModel{
		ID:          message.ID,
		Description: message.Description,
		SenderID:    message.SenderID,
		ReceiverID:  message.ReceiverID,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Sender", "Receiver", "Comments").Create(model).Error; err != nil {
		return err
	}

	message.ID = model.ID
	message.CreatedAt = time.Unix(model.CreatedAt, 0)
	message.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*entities.Message, error) {
	var model MessageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return messageToEntity(&model), nil
}

func (r *MessageRepository) ListReceived(ctx context.Context, receiverID string) ([]*entities.Message, error) {
	var models []*MessageModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Where("receiver_id = ?", receiverID).
		Order("created_at desc").
		Preload("Sender").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at asc")
		}).
		Preload("Comments.Sender").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*entities.Message, 0, len(models))
	for _, model := range models {
		messages = append(messages, messageToEntity(model))
	}
	return messages, nil
}

// Delete removes the message and its comments in one pass, keeping the
// cascade independent of store-level FK enforcement.
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)

	if err := db.Where("message_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&MessageModel{}).Error
}

func messageToEntity(model *MessageModel) *entities.Message {
	message := &entities.Message{
		ID:          model.ID,
		Description: model.Description,
		SenderID:    model.SenderID,
		ReceiverID:  model.ReceiverID,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
	if model.Sender.ID != "" {
		message.Sender = userToEntity(&model.Sender)
	}
	if model.Receiver.ID != "" {
		message.Receiver = userToEntity(&model.Receiver)
	}
	for i := range model.Comments {
		message.Comments = append(message.Comments, commentToEntity(&model.Comments[i]))
	}
	return message
}
