package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftops/workforce-backend-go/internal/domain/master"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	// Location handlers
	CreateLocation(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
	UpdateLocation(w http.ResponseWriter, r *http.Request)
	DeleteLocation(w http.ResponseWriter, r *http.Request)

	// Event handlers
	CreateEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	UpdateEvent(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)

	// Task handlers
	CreateTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)

	// Client handlers
	CreateClient(w http.ResponseWriter, r *http.Request)
	ListClients(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)
	DeleteClient(w http.ResponseWriter, r *http.Request)

	// Attribute handlers; the {kind} URL parameter selects the table
	CreateAttribute(w http.ResponseWriter, r *http.Request)
	ListAttributes(w http.ResponseWriter, r *http.Request)
	UpdateAttribute(w http.ResponseWriter, r *http.Request)
	DeleteAttribute(w http.ResponseWriter, r *http.Request)

	// Report template handlers
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.Service
}

func NewMasterHandler(masterService master.Service) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== LOCATION HANDLERS ====================

func (h *masterHandlerImpl) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req master.LocationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created successfully", result)
}

func (h *masterHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListLocations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var req master.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateLocation(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteLocation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location deleted successfully", nil)
}

// ==================== EVENT HANDLERS ====================

func (h *masterHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req master.EventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created successfully", result)
}

func (h *masterHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListEvents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var req master.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateEvent(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteEvent(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted successfully", nil)
}

// ==================== TASK HANDLERS ====================

func (h *masterHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req master.NameRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", result)
}

func (h *masterHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListTasks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var req master.NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateTask(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteTask(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}

// ==================== CLIENT HANDLERS ====================

func (h *masterHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req master.ClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", result)
}

func (h *masterHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListClients(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var req master.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateClient(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteClient(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// ==================== ATTRIBUTE HANDLERS ====================

func (h *masterHandlerImpl) CreateAttribute(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var req master.NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateAttribute(r.Context(), kind, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attribute created successfully", result)
}

func (h *masterHandlerImpl) ListAttributes(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	results, err := h.masterService.ListAttributes(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateAttribute(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var req master.NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateAttribute(r.Context(), kind, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteAttribute(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteAttribute(r.Context(), kind, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attribute deleted successfully", nil)
}

// ==================== TEMPLATE HANDLERS ====================

func (h *masterHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req master.TemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template created successfully", result)
}

func (h *masterHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	var req master.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateTemplate(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.masterService.DeleteTemplate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template deleted successfully", nil)
}
