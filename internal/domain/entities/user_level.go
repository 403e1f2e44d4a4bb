package entities

// UserLevel is the role of a user. Persisted as an integer.
type UserLevel int

const (
	// LevelNormal is the default level assigned at registration.
	LevelNormal UserLevel = 0
	// LevelAdmin may edit and delete other users.
	LevelAdmin UserLevel = 1
)

// Valid reports whether the level is one of the known values.
func (l UserLevel) Valid() bool {
	return l == LevelNormal || l == LevelAdmin
}

func (l UserLevel) String() string {
	switch l {
	case LevelAdmin:
		return "admin"
	default:
		return "normal"
	}
}
