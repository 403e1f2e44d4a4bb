package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
	"github.com/userdash/dashboard-backend/internal/handlers/dto"
	"github.com/userdash/dashboard-backend/internal/handlers/middleware"
	"github.com/userdash/dashboard-backend/internal/services"
)

// UserHandler serves user listing, profile editing, and the admin
// user-management surface.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns all users ordered by last name. Administrators see
// stored password hashes, normal users do not.
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.UserResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser returns one user's public profile.
//
//	@Summary	Show a user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"user id"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ProblemResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile updates the acting user's own name and email.
//
//	@Summary	Update own profile
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.UpdateProfileRequest	true	"profile form"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/users/me/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), actor, services.ProfileUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.ToUserResponse(user),
		"flash": dto.T(c, "flash.profile_updated", map[string]interface{}{"Name": user.FullName()}),
	})
}

// UpdatePassword changes the acting user's own password.
//
//	@Summary	Update own password
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.UpdatePasswordRequest	true	"password form"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/users/me/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	user, err := h.userService.UpdatePassword(c.Request.Context(), actor, services.PasswordUpdateInput{
		Password:   req.Password,
		ConfirmPwd: req.ConfirmPwd,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.ToUserResponse(user),
		"flash": dto.T(c, "flash.password_updated"),
	})
}

// UpdateDescription sets the acting user's profile description.
//
//	@Summary	Update own description
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.UpdateDescriptionRequest	true	"description form"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/users/me/description [put]
func (h *UserHandler) UpdateDescription(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	var req dto.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	user, err := h.userService.UpdateDescription(c.Request.Context(), actor, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.ToUserResponse(user),
		"flash": dto.T(c, "flash.description_updated"),
	})
}

// CreateUser lets an administrator register an account for someone
// else. Validation is identical to self-registration; the new account
// is not logged in and no founder promotion applies.
//
//	@Summary	Create a user (admin)
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.RegisterRequest	true	"registration form"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), services.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		ConfirmPwd: req.ConfirmPwd,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  dto.ToUserResponse(user),
		"flash": dto.T(c, "flash.user_created", map[string]interface{}{"Name": user.FullName()}),
	})
}

// AdminUpdateUser edits another user's profile, including user level.
//
//	@Summary	Edit a user (admin)
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"user id"
//	@Param		request	body		dto.AdminUpdateUserRequest	true	"profile form"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/users/{id} [put]
func (h *UserHandler) AdminUpdateUser(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	editUserID := c.Param("id")
	input := services.ProfileUpdateInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		EditUserID: &editUserID,
	}
	if req.UserLevel != nil {
		level := entities.UserLevel(*req.UserLevel)
		input.Level = &level
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.ToUserResponse(user),
		"flash": dto.T(c, "flash.profile_updated", map[string]interface{}{"Name": user.FullName()}),
	})
}

// AdminUpdatePassword resets another user's password.
//
//	@Summary	Reset a user's password (admin)
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"user id"
//	@Param		request	body		dto.UpdatePasswordRequest	true	"password form"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/users/{id}/password [put]
func (h *UserHandler) AdminUpdatePassword(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	editUserID := c.Param("id")
	user, err := h.userService.UpdatePassword(c.Request.Context(), actor, services.PasswordUpdateInput{
		Password:   req.Password,
		ConfirmPwd: req.ConfirmPwd,
		EditUserID: &editUserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.ToUserResponse(user),
		"flash": dto.T(c, "flash.password_updated"),
	})
}

// DeleteUser removes a user and cascades their messages and comments.
// Self-deletion is refused.
//
//	@Summary	Delete a user (admin)
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"user id"
//	@Success	200	{object}	map[string]string
//	@Failure	403	{object}	dto.ProblemResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"flash": dto.T(c, "flash.user_deleted")})
}
