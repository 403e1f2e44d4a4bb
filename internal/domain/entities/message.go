package entities

import "time"

// Message is a directed note posted on a user's wall.
// It is owned by both referenced users: deleting either one removes it.
type Message struct {
	ID          string
	Description string
	SenderID    string
	ReceiverID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Sender   *User
	Receiver *User
	Comments []*Comment
}
