package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftops/workforce-backend-go/internal/domain/notification"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	// Push settings
	SavePushSetting(w http.ResponseWriter, r *http.Request)
	GetPushSettings(w http.ResponseWriter, r *http.Request)

	// Feedback
	SaveFeedback(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// SavePushSetting handles PUT /notifications/push-settings
func (h *notificationHandlerImpl) SavePushSetting(w http.ResponseWriter, r *http.Request) {
	var req notification.PushSettingRequest

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

	result, err := h.notificationService.SavePushSetting(r.Context(), callerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPushSettings handles GET /notifications/push-settings
func (h *notificationHandlerImpl) GetPushSettings(w http.ResponseWriter, r *http.Request) {
	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	results, err := h.notificationService.GetPushSettings(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SaveFeedback handles POST /feedback
func (h *notificationHandlerImpl) SaveFeedback(w http.ResponseWriter, r *http.Request) {
	var req notification.FeedbackRequest

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

	if err := h.notificationService.SaveFeedback(r.Context(), callerID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Feedback saved", nil)
}
