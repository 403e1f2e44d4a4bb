package entities

import "time"

// DefaultDescription is assigned to new users until they set their own.
const DefaultDescription = "This user has not set a description yet."

// User is an identity record of the dashboard.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Description  string
	Level        UserLevel
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user is an administrator.
func (u *User) IsAdmin() bool {
	return u.Level == LevelAdmin
}

// FullName returns "First Last" for display and log fields.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
