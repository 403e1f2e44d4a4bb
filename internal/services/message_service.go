package services

import (
	"context"

	"github.com/userdash/dashboard-backend/internal/domain"
	"github.com/userdash/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/userdash/dashboard-backend/internal/domain/errors"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
	"github.com/userdash/dashboard-backend/internal/domain/repositories"
	"github.com/userdash/dashboard-backend/internal/domain/validation"
)

// MessageService holds the creation rules for wall messages and their
// comments.
type MessageService struct {
	userRepo    repositories.UserRepository
	messageRepo repositories.MessageRepository
	commentRepo repositories.CommentRepository
	notifier    ports.Notifier
	logger      ports.Logger
}

// NewMessageService creates a new MessageService.
func NewMessageService(
	userRepo repositories.UserRepository,
	messageRepo repositories.MessageRepository,
	commentRepo repositories.CommentRepository,
	notifier ports.Notifier,
	logger ports.Logger,
) *MessageService {
	return &MessageService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// SendMessageInput is the new-message payload. The sender is the actor.
type SendMessageInput struct {
	Description string
	ReceiverID  string
}

// Send validates and persists a message from the actor to the receiver.
// An unresolvable sender or receiver is a not-found failure, fatal to
// the request rather than part of the validation list.
func (s *MessageService) Send(ctx context.Context, actor domain.Actor, input SendMessageInput) (*entities.Message, error) {
	if len(input.Description) < 1 {
		s.logger.Warn("message rejected", "reason", "empty description", "sender_id", actor.UserID)
		return nil, domainerrors.NewValidation(validation.MsgMessageRequired)
	}

	sender, err := s.requireUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.requireUser(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}

	message := &entities.Message{
		Description: input.Description,
		SenderID:    sender.ID,
		ReceiverID:  receiver.ID,
		Sender:      sender,
		Receiver:    receiver,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("message created",
		"message_id", message.ID,
		"sender_id", sender.ID,
		"receiver_id", receiver.ID,
	)
	s.notifier.MessageCreated(message)
	return message, nil
}

// PostCommentInput is the new-comment payload. The sender is the actor.
type PostCommentInput struct {
	Description string
	ReceiverID  string
	MessageID   string
}

// PostComment validates and persists a comment on a message.
func (s *MessageService) PostComment(ctx context.Context, actor domain.Actor, input PostCommentInput) (*entities.Comment, error) {
	if len(input.Description) < 1 {
		s.logger.Warn("comment rejected", "reason", "empty description", "sender_id", actor.UserID)
		return nil, domainerrors.NewValidation(validation.MsgCommentRequired)
	}

	sender, err := s.requireUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.requireUser(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}

	message, err := s.messageRepo.FindByID(ctx, input.MessageID)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, domainerrors.ErrMessageNotFound
	}

	comment := &entities.Comment{
		Description: input.Description,
		SenderID:    sender.ID,
		ReceiverID:  receiver.ID,
		MessageID:   message.ID,
		Sender:      sender,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"comment_id", comment.ID,
		"message_id", message.ID,
		"sender_id", sender.ID,
	)
	s.notifier.CommentCreated(comment)
	return comment, nil
}

// Wall returns the messages received by a user, newest first, with
// senders and comments attached.
func (s *MessageService) Wall(ctx context.Context, userID string) ([]*entities.Message, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListReceived(ctx, userID)
}

func (s *MessageService) requireUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}
