package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftops/workforce-backend-go/internal/domain/announcement"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.Service
}

func NewAnnouncementHandler(announcementService announcement.Service) AnnouncementHandler {
	return &announcementHandlerImpl{
		announcementService: announcementService,
	}
}

// Create handles POST /announcements
func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateRequest

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

	result, err := h.announcementService.Create(r.Context(), req, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", result)
}

// ListMine handles GET /announcements
func (h *announcementHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	results, err := h.announcementService.ListForUser(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
