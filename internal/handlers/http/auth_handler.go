package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userdash/dashboard-backend/internal/domain"
	"github.com/userdash/dashboard-backend/internal/domain/entities"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
	"github.com/userdash/dashboard-backend/internal/handlers/dto"
	"github.com/userdash/dashboard-backend/internal/services"
)

// AuthHandler serves registration, login, and logout.
type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	tokens      ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	userService *services.UserService,
	authService *services.AuthService,
	tokens ports.TokenService,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		tokens:      tokens,
	}
}

// Register creates an account and logs the new user in.
//
//	@Summary	Register a new user
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RegisterRequest	true	"registration form"
//	@Success	201		{object}	dto.AuthResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
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

	// The first few accounts become administrators. The registration
	// core always creates NORMAL users; promotion is this caller's job.
	var flash string
	promoted, err := h.userService.MaybePromoteFounder(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if promoted {
		user.Level = entities.LevelAdmin
		flash = dto.T(c, "flash.founder_admin")
	}

	token, err := h.tokens.Issue(domain.Actor{UserID: user.ID, Level: user.Level})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
		Flash: flash,
	})
}

// Login verifies credentials and issues a session token.
//
//	@Summary	Log a user in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"login form"
//	@Success	200		{object}	dto.AuthResponse
//	@Failure	400		{object}	dto.ProblemResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.ValidationProblem(c, nil))
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(domain.Actor{UserID: user.ID, Level: user.Level})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Logout acknowledges a logout. Tokens are stateless; discarding the
// token on the client ends the session.
//
//	@Summary	Log the current user out
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": dto.T(c, "flash.logged_out")})
}
