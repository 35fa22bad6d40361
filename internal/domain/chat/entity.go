package chat

import "time"

// Conversation types
const (
	TypeDirect = "direct"
	TypeGroup  = "group"
)

type Conversation struct {
	ID           int64
	Type         string
	Name         *string
	CreatedBy    int64
	CreatedAt    time.Time
	Participants []Participant
}

type Participant struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type Message struct {
	ID             int64
	ConversationID int64
	SenderID       int64
	Content        string
	CreatedAt      time.Time

	SenderName *string
}
