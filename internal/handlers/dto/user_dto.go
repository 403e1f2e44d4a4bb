package dto

import (
	"time"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
)

// RegisterRequest is the registration form. Field-level rules are not
// enforced here: the core accumulates every failure into one response,
// so the fields only need to arrive as strings.
type RegisterRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ConfirmPwd string `json:"confirm_pwd"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	Flash string       `json:"flash,omitempty"`
}

// UpdateProfileRequest is the self-service profile form.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// AdminUpdateUserRequest is the admin edit-other-user form. Level is
// the only place a user level can be set.
type AdminUpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	UserLevel *int   `json:"user_level" binding:"omitempty,oneof=0 1"`
}

// UpdatePasswordRequest is the password change form.
type UpdatePasswordRequest struct {
	Password   string `json:"password"`
	ConfirmPwd string `json:"confirm_pwd"`
}

// UpdateDescriptionRequest is the profile description form.
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

// UserResponse is the API shape of a user. PasswordHash is only
// populated on admin listings, mirroring the admin dashboard.
type UserResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Description  string    `json:"description"`
	UserLevel    int       `json:"user_level"`
	PasswordHash string    `json:"password,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToUserResponse converts a User entity into its API shape.
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Description: user.Description,
		UserLevel:   int(user.Level),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserResponseWithHash includes the stored hash (admin listings).
func ToUserResponseWithHash(user *entities.User) UserResponse {
	resp := ToUserResponse(user)
	resp.PasswordHash = user.PasswordHash
	return resp
}

// ToUserResponses converts a list of users. Hashes are carried only
// when present on the entity; the service blanks them for non-admins.
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponseWithHash(user)
	}
	return responses
}
