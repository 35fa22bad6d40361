package chat

import "context"

// Service defines business logic for chat.
type Service interface {
	CreateConversation(ctx context.Context, req CreateConversationRequest, creatorID int64) (ConversationResponse, error)

	ListConversations(ctx context.Context, userID int64) ([]ConversationResponse, error)

	// SendMessage inserts the message and enqueues a push notification to
	// the other participants inside one transaction; a failed enqueue
	// rolls the message back.
	SendMessage(ctx context.Context, req SendMessageRequest, senderID int64) (MessageResponse, error)

	ListMessages(ctx context.Context, conversationID, callerID int64) ([]MessageResponse, error)
}
