package domain

import "github.com/userdash/dashboard-backend/internal/domain/entities"

// Actor identifies the authenticated user performing an operation.
// It is passed explicitly into every service call that requires
// authentication; nothing in the core reads session state ambiently.
type Actor struct {
	UserID string
	Level  entities.UserLevel
}

// IsAdmin reports whether the actor holds the administrator level.
func (a Actor) IsAdmin() bool {
	return a.Level == entities.LevelAdmin
}
