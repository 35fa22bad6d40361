package http

import (
	"net/http"

	"github.com/shiftops/workforce-backend-go/internal/domain/roster"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	View(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.Service
}

func NewRosterHandler(rosterService roster.Service) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// View handles GET /roster. Employee-role callers are pinned to their own
// shifts.
func (h *rosterHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	filter := roster.Filter{
		Date:        queryDate(r, "date"),
		EmployeeIDs: queryInt64List(r, "employee_ids"),
		LocationID:  queryInt64(r, "location_id"),
		ClientID:    queryInt64(r, "client_id"),
		EventID:     queryInt64(r, "event_id"),
		TaskID:      queryInt64(r, "task_id"),
		GroupBy:     r.URL.Query().Get("group_by"),
		Page:        getIntQueryParam(r, "page", 1),
		PageSize:    getIntQueryParam(r, "page_size", 50),
	}

	if currentRole(r) == user.RoleEmployee {
		callerID, err := currentUserID(r)
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		filter.EmployeeIDs = []int64{callerID}
	}

	result, err := h.rosterService.View(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
