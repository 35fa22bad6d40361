package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftops/workforce-backend-go/internal/domain/chat"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type chatRepository struct {
	db *database.DB
}

func NewChatRepository(db *database.DB) chat.Repository {
	return &chatRepository{db: db}
}

// CreateConversation implements chat.Repository.
func (r *chatRepository) CreateConversation(ctx context.Context, c chat.Conversation, participantIDs []int64) (chat.Conversation, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO conversations (type, name, created_by) VALUES ($1, $2, $3) RETURNING id, created_at`,
		c.Type, c.Name, c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return chat.Conversation{}, fmt.Errorf("failed to create conversation: %w", err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO conversation_participants (conversation_id, user_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT DO NOTHING`,
		c.ID, participantIDs,
	)
	if err != nil {
		return chat.Conversation{}, fmt.Errorf("failed to add participants: %w", err)
	}

	return c, nil
}

// GetConversation implements chat.Repository.
func (r *chatRepository) GetConversation(ctx context.Context, id int64) (chat.Conversation, error) {
	q := GetQuerier(ctx, r.db)

	var c chat.Conversation
	err := q.QueryRow(ctx,
		`SELECT id, type, name, created_by, created_at FROM conversations WHERE id = $1`, id,
	).Scan(&c.ID, &c.Type, &c.Name, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return chat.Conversation{}, chat.ErrConversationNotFound
		}
		return chat.Conversation{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	participants, err := r.participants(ctx, q, c.ID)
	if err != nil {
		return chat.Conversation{}, err
	}
	c.Participants = participants

	return c, nil
}

// ListConversations implements chat.Repository.
func (r *chatRepository) ListConversations(ctx context.Context, userID int64) ([]chat.Conversation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT c.id, c.type, c.name, c.created_by, c.created_at
		 FROM conversations c
		 JOIN conversation_participants cp ON cp.conversation_id = c.id
		 WHERE cp.user_id = $1
		 ORDER BY c.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []chat.Conversation
	for rows.Next() {
		var c chat.Conversation
		if err := rows.Scan(&c.ID, &c.Type, &c.Name, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range conversations {
		participants, err := r.participants(ctx, q, conversations[i].ID)
		if err != nil {
			return nil, err
		}
		conversations[i].Participants = participants
	}

	return conversations, nil
}

func (r *chatRepository) participants(ctx context.Context, q database.Querier, conversationID int64) ([]chat.Participant, error) {
	rows, err := q.Query(ctx,
		`SELECT cp.user_id, u.username
		 FROM conversation_participants cp
		 JOIN users u ON u.id = cp.user_id
		 WHERE cp.conversation_id = $1
		 ORDER BY u.username`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []chat.Participant
	for rows.Next() {
		var p chat.Participant
		if err := rows.Scan(&p.UserID, &p.Username); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// IsParticipant implements chat.Repository.
func (r *chatRepository) IsParticipant(ctx context.Context, conversationID, userID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM conversation_participants WHERE conversation_id = $1 AND user_id = $2
		)`,
		conversationID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}

	return exists, nil
}

// ParticipantIDs implements chat.Repository.
func (r *chatRepository) ParticipantIDs(ctx context.Context, conversationID int64) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT user_id FROM conversation_participants WHERE conversation_id = $1`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participant ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan participant id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateMessage implements chat.Repository.
func (r *chatRepository) CreateMessage(ctx context.Context, m chat.Message) (chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO messages (conversation_id, sender_id, content) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		m.ConversationID, m.SenderID, m.Content,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	err = q.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, m.SenderID).Scan(&m.SenderName)
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to resolve sender: %w", err)
	}

	return m, nil
}

// ListMessages implements chat.Repository.
func (r *chatRepository) ListMessages(ctx context.Context, conversationID int64) ([]chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT m.id, m.conversation_id, m.sender_id, u.username, m.content, m.created_at
		 FROM messages m
		 JOIN users u ON u.id = m.sender_id
		 WHERE m.conversation_id = $1
		 ORDER BY m.created_at, m.id`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
