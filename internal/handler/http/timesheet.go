package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	SearchEmployees(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	FilterOptions(w http.ResponseWriter, r *http.Request)
	CreateEntries(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	UpdateInvoices(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	BackfillNotifications(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	ImportTemplate(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// SearchEmployees implements TimesheetHandler.
func (h *timesheetHandlerImpl) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	results, err := h.timesheetService.SearchEmployees(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Details implements TimesheetHandler.
func (h *timesheetHandlerImpl) Details(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.Details(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FilterOptions implements TimesheetHandler.
func (h *timesheetHandlerImpl) FilterOptions(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.FilterOptionsFilter{
		Year:         queryInt(r, "year"),
		Month:        queryString(r, "month"),
		EmployeeIDs:  queryInt64List(r, "employee_ids"),
		LocationID:   queryInt64(r, "location_id"),
		EventID:      queryInt64(r, "event_id"),
		TaskID:       queryInt64(r, "task_id"),
		ClientID:     queryInt64(r, "client_id"),
		Rate:         queryString(r, "rate"),
		RatesPerHour: queryFloatList(r, "rates_per_hour"),
	}

	result, err := h.timesheetService.FilterOptions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEntries implements TimesheetHandler.
func (h *timesheetHandlerImpl) CreateEntries(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateEntriesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.timesheetService.CreateEntries(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shifts created", result)
}

// UpdateEntry implements TimesheetHandler.
func (h *timesheetHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid entry id", nil)
		return
	}

	var req timesheet.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.timesheetService.UpdateEntry(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteEntry implements TimesheetHandler.
func (h *timesheetHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid entry id", nil)
		return
	}

	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	if err := h.timesheetService.DeleteEntry(r.Context(), id, actorID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// UpdateInvoices implements TimesheetHandler.
func (h *timesheetHandlerImpl) UpdateInvoices(w http.ResponseWriter, r *http.Request) {
	var req timesheet.InvoiceUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	updated, err := h.timesheetService.UpdateInvoices(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"updated": updated})
}

// ListEntries implements TimesheetHandler. Employee-role callers only see
// their own shifts regardless of the requested filter.
func (h *timesheetHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.ListFilter{
		LocationIDs: queryInt64List(r, "location_ids"),
		Invoiced:    queryBool(r, "invoiced"),
		EmployeeID:  queryInt64(r, "employee_id"),
		DateFrom:    queryDate(r, "date_from"),
		DateTo:      queryDate(r, "date_to"),
		Page:        getIntQueryParam(r, "page", 1),
		PageSize:    getIntQueryParam(r, "page_size", 20),
	}

	if currentRole(r) == user.RoleEmployee {
		callerID, err := currentUserID(r)
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		filter.EmployeeID = &callerID
	}

	results, total, err := h.timesheetService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(filter.Page, filter.PageSize, total))
}

// ListLogs implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	pageSize := getIntQueryParam(r, "page_size", 20)

	results, total, err := h.timesheetService.ListLogs(r.Context(), page, pageSize)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(page, pageSize, total))
}

// GetShift implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid entry id", nil)
		return
	}

	result, err := h.timesheetService.GetShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if currentRole(r) == user.RoleEmployee {
		callerID, err := currentUserID(r)
		if err != nil || result.Entry.EmployeeID != callerID {
			response.HandleError(w, timesheet.ErrForbidden)
			return
		}
	}

	response.Success(w, result)
}

// BackfillNotifications implements TimesheetHandler.
func (h *timesheetHandlerImpl) BackfillNotifications(w http.ResponseWriter, r *http.Request) {
	var req timesheet.BackfillNotificationsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	queued, err := h.timesheetService.BackfillNotifications(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"queued": queued})
}

// Import implements TimesheetHandler. The workbook arrives as the "file"
// part of a multipart form.
func (h *timesheetHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.timesheetService.Import(r.Context(), file, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ImportTemplate implements TimesheetHandler.
func (h *timesheetHandlerImpl) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	content, err := h.timesheetService.ImportTemplate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="shift-import-template.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	w.Write(content)
}

// queryDate parses a YYYY-MM-DD query parameter.
func queryDate(r *http.Request, key string) *time.Time {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return nil
	}
	return &t
}
