package chat

import "context"

// Repository defines data access for conversations and messages. Writes
// honor a transaction placed on the context by WithTransaction.
type Repository interface {
	CreateConversation(ctx context.Context, c Conversation, participantIDs []int64) (Conversation, error)

	// ListConversations returns the caller's conversations with their
	// participants aggregated.
	ListConversations(ctx context.Context, userID int64) ([]Conversation, error)

	GetConversation(ctx context.Context, id int64) (Conversation, error)

	IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error)

	ParticipantIDs(ctx context.Context, conversationID int64) ([]int64, error)

	CreateMessage(ctx context.Context, m Message) (Message, error)

	// ListMessages returns the history oldest first.
	ListMessages(ctx context.Context, conversationID int64) ([]Message, error)
}
