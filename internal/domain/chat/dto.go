package chat

import (
	"time"

	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

type CreateConversationRequest struct {
	Type           string  `json:"type"`
	Name           *string `json:"name"`
	ParticipantIDs []int64 `json:"participant_ids"`
}

func (r *CreateConversationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != TypeDirect && r.Type != TypeGroup {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be direct or group",
		})
	}
	if len(r.ParticipantIDs) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "participant_ids",
			Message: "a conversation needs at least two participants",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SendMessageRequest struct {
	ConversationID int64  `json:"conversation_id"`
	Content        string `json:"content"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ConversationID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "conversation_id",
			Message: "conversation_id is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConversationResponse struct {
	ID           int64         `json:"id"`
	Type         string        `json:"type"`
	Name         *string       `json:"name"`
	CreatedBy    int64         `json:"created_by"`
	Participants []Participant `json:"participants"`
	CreatedAt    string        `json:"created_at"`
}

func ToConversationResponse(c Conversation) ConversationResponse {
	resp := ConversationResponse{
		ID:           c.ID,
		Type:         c.Type,
		Name:         c.Name,
		CreatedBy:    c.CreatedBy,
		Participants: c.Participants,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
	if resp.Participants == nil {
		resp.Participants = []Participant{}
	}
	return resp
}

type MessageResponse struct {
	ID             int64   `json:"id"`
	ConversationID int64   `json:"conversation_id"`
	SenderID       int64   `json:"sender_id"`
	SenderName     *string `json:"sender_name,omitempty"`
	Content        string  `json:"content"`
	CreatedAt      string  `json:"created_at"`
}

func ToMessageResponse(m Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}
