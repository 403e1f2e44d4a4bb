package entities

import "time"

// Comment is a reply attached to a message, also directed sender to
// receiver. It is removed with its sender, receiver, or parent message.
type Comment struct {
	ID          string
	Description string
	SenderID    string
	ReceiverID  string
	MessageID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Sender *User
}
