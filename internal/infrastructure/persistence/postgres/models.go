package postgres

// UserModel is the GORM model for users. Email uniqueness lives here as
// a real index: the lookup-before-insert in the service is advisory and
// this constraint is what removes the registration race.
type UserModel struct {
	ID           string `gorm:"type:uuid;primary_key"`
	FirstName    string `gorm:"type:varchar(50);not null"`
	LastName     string `gorm:"type:varchar(50);not null;index"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Description  string `gorm:"type:varchar(500);not null"`
	UserLevel    int    `gorm:"not null;default:0;index"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// MessageModel is the GORM model for wall messages. Both user foreign
// keys cascade: deleting either owner removes the message.
type MessageModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Description string `gorm:"type:varchar(500);not null"`
	SenderID    string `gorm:"type:uuid;not null;index"`
	ReceiverID  string `gorm:"type:uuid;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`

	Sender   UserModel      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver UserModel      `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
	Comments []CommentModel `gorm:"foreignKey:MessageID"`
}

func (MessageModel) TableName() string {
	return "messages"
}

// CommentModel is the GORM model for message comments. It cascades with
// its sender, receiver, and parent message.
type CommentModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Description string `gorm:"type:varchar(500);not null"`
	SenderID    string `gorm:"type:uuid;not null;index"`
	ReceiverID  string `gorm:"type:uuid;not null;index"`
	MessageID   string `gorm:"type:uuid;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`

	Sender   UserModel    `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver UserModel    `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
	Message  MessageModel `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

func (CommentModel) TableName() string {
	return "comments"
}
