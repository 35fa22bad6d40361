package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftops/workforce-backend-go/internal/domain/chat"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type ChatHandler interface {
	CreateConversation(w http.ResponseWriter, r *http.Request)
	ListConversations(w http.ResponseWriter, r *http.Request)
	SendMessage(w http.ResponseWriter, r *http.Request)
	ListMessages(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.Service
}

func NewChatHandler(chatService chat.Service) ChatHandler {
	return &chatHandlerImpl{
		chatService: chatService,
	}
}

// CreateConversation handles POST /chat/conversations
func (h *chatHandlerImpl) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req chat.CreateConversationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.chatService.CreateConversation(r.Context(), req, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Conversation created", result)
}

// ListConversations handles GET /chat/conversations
func (h *chatHandlerImpl) ListConversations(w http.ResponseWriter, r *http.Request) {
	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	results, err := h.chatService.ListConversations(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SendMessage handles POST /chat/messages
func (h *chatHandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req chat.SendMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.chatService.SendMessage(r.Context(), req, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message sent", result)
}

// ListMessages handles GET /chat/conversations/{id}/messages
func (h *chatHandlerImpl) ListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid conversation id", nil)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	results, err := h.chatService.ListMessages(r.Context(), conversationID, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
