package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userdash/dashboard-backend/internal/handlers/dto"
	"github.com/userdash/dashboard-backend/internal/handlers/middleware"
	"github.com/userdash/dashboard-backend/internal/services"
)

// MessageHandler serves the per-user message wall.
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Wall lists the messages on a user's wall, newest first, each with
// its comments oldest first.
//
//	@Summary	Show a user's message wall
//	@Tags		messages
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"wall owner id"
//	@Success	200	{array}	dto.MessageResponse
//	@Failure	404	{object}	dto.ProblemResponse
//	@Router		/users/{id}/messages [get]
func (h *MessageHandler) Wall(c *gin.Context) {
	messages, err := h.messageService.Wall(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

// SendMessage posts a message from the acting user onto the wall of
// the user in the path.
//
//	@Summary	Send a message
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"receiver id"
//	@Param		request	body		dto.SendMessageRequest	true	"message form"
//	@Success	201		{object}	dto.MessageResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/users/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), actor, services.SendMessageInput{
		Description: req.Description,
		ReceiverID:  c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}

// PostComment replies to a message on a user's wall.
//
//	@Summary	Comment on a message
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string					true	"wall owner id"
//	@Param		messageID	path		string					true	"message id"
//	@Param		request		body		dto.PostCommentRequest	true	"comment form"
//	@Success	201			{object}	dto.CommentResponse
//	@Failure	400			{object}	dto.ProblemResponse
//	@Router		/users/{id}/messages/{messageID}/comments [post]
func (h *MessageHandler) PostComment(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	var req dto.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	comment, err := h.messageService.PostComment(c.Request.Context(), actor, services.PostCommentInput{
		Description: req.Description,
		ReceiverID:  c.Param("id"),
		MessageID:   c.Param("messageID"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}
