package chat

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shiftops/workforce-backend-go/internal/domain/chat"
	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
)

type ChatServiceImpl struct {
	db            *database.DB
	repo          chat.Repository
	notifications notification.Service
}

func NewChatService(db *database.DB, repo chat.Repository, notifications notification.Service) chat.Service {
	return &ChatServiceImpl{
		db:            db,
		repo:          repo,
		notifications: notifications,
	}
}

// CreateConversation implements chat.Service. The creator joins the
// participant list when not already on it.
func (s *ChatServiceImpl) CreateConversation(ctx context.Context, req chat.CreateConversationRequest, creatorID int64) (chat.ConversationResponse, error) {
	if err := req.Validate(); err != nil {
		return chat.ConversationResponse{}, err
	}

	participantIDs := req.ParticipantIDs
	found := false
	for _, id := range participantIDs {
		if id == creatorID {
			found = true
			break
		}
	}
	if !found {
		participantIDs = append(participantIDs, creatorID)
	}

	var created chat.Conversation
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.CreateConversation(txCtx, chat.Conversation{
			Type:      req.Type,
			Name:      req.Name,
			CreatedBy: creatorID,
		}, participantIDs)
		return err
	})
	if err != nil {
		return chat.ConversationResponse{}, err
	}

	full, err := s.repo.GetConversation(ctx, created.ID)
	if err != nil {
		return chat.ConversationResponse{}, err
	}
	return chat.ToConversationResponse(full), nil
}

// ListConversations implements chat.Service.
func (s *ChatServiceImpl) ListConversations(ctx context.Context, userID int64) ([]chat.ConversationResponse, error) {
	conversations, err := s.repo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]chat.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		responses = append(responses, chat.ToConversationResponse(c))
	}
	return responses, nil
}

// SendMessage implements chat.Service. The insert and the push enqueue
// share one transaction so a failed enqueue rolls the message back.
func (s *ChatServiceImpl) SendMessage(ctx context.Context, req chat.SendMessageRequest, senderID int64) (chat.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return chat.MessageResponse{}, err
	}

	isParticipant, err := s.repo.IsParticipant(ctx, req.ConversationID, senderID)
	if err != nil {
		return chat.MessageResponse{}, err
	}
	if !isParticipant {
		return chat.MessageResponse{}, chat.ErrNotParticipant
	}

	var message chat.Message
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		message, err = s.repo.CreateMessage(txCtx, chat.Message{
			ConversationID: req.ConversationID,
			SenderID:       senderID,
			Content:        req.Content,
		})
		if err != nil {
			return err
		}

		participantIDs, err := s.repo.ParticipantIDs(txCtx, req.ConversationID)
		if err != nil {
			return err
		}
		recipients := make([]int64, 0, len(participantIDs))
		for _, id := range participantIDs {
			if id != senderID {
				recipients = append(recipients, id)
			}
		}
		if len(recipients) == 0 {
			return nil
		}

		senderName := strconv.FormatInt(senderID, 10)
		if message.SenderName != nil {
			senderName = *message.SenderName
		}
		return s.notifications.EnqueuePush(txCtx, recipients,
			fmt.Sprintf("New message from %s", senderName),
			truncate(req.Content, 120),
			map[string]string{
				"type":            "message",
				"conversation_id": strconv.FormatInt(req.ConversationID, 10),
			},
		)
	})
	if err != nil {
		return chat.MessageResponse{}, err
	}

	return chat.ToMessageResponse(message), nil
}

// ListMessages implements chat.Service.
func (s *ChatServiceImpl) ListMessages(ctx context.Context, conversationID, callerID int64) ([]chat.MessageResponse, error) {
	isParticipant, err := s.repo.IsParticipant(ctx, conversationID, callerID)
	if err != nil {
		return nil, err
	}
	if !isParticipant {
		return nil, chat.ErrNotParticipant
	}

	messages, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	responses := make([]chat.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, chat.ToMessageResponse(m))
	}
	return responses, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
