package dto

import (
	"time"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
)

// SendMessageRequest is the new-message form. The receiver comes from
// the URL; an empty description is rejected by the core, not here.
type SendMessageRequest struct {
	Description string `json:"description"`
}

// PostCommentRequest is the new-comment form.
type PostCommentRequest struct {
	Description string `json:"description"`
}

// CommentResponse is the API shape of a comment.
type CommentResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name,omitempty"`
	ReceiverID  string    `json:"receiver_id"`
	MessageID   string    `json:"message_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// MessageResponse is the API shape of a wall message with its comments.
type MessageResponse struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	SenderID    string            `json:"sender_id"`
	SenderName  string            `json:"sender_name,omitempty"`
	ReceiverID  string            `json:"receiver_id"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ToCommentResponse converts a Comment entity into its API shape.
func ToCommentResponse(comment *entities.Comment) CommentResponse {
	resp := CommentResponse{
		ID:          comment.ID,
		Description: comment.Description,
		SenderID:    comment.SenderID,
		ReceiverID:  comment.ReceiverID,
		MessageID:   comment.MessageID,
		CreatedAt:   comment.CreatedAt,
	}
	if comment.Sender != nil {
		resp.SenderName = comment.Sender.FullName()
	}
	return resp
}

// ToMessageResponse converts a Message entity into its API shape.
func ToMessageResponse(message *entities.Message) MessageResponse {
	resp := MessageResponse{
		ID:          message.ID,
		Description: message.Description,
		SenderID:    message.SenderID,
		ReceiverID:  message.ReceiverID,
		Comments:    make([]CommentResponse, 0, len(message.Comments)),
		CreatedAt:   message.CreatedAt,
	}
	if message.Sender != nil {
		resp.SenderName = message.Sender.FullName()
	}
	for _, comment := range message.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(comment))
	}
	return resp
}

// ToMessageResponses converts a wall listing.
func ToMessageResponses(messages []*entities.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = ToMessageResponse(message)
	}
	return responses
}
