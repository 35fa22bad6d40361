package timesheet

import (
	"time"

	"github.com/shiftops/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

// CreateEntriesRequest adds one shift for every employee on every date.
type CreateEntriesRequest struct {
	EmployeeIDs     []int64  `json:"employee_ids"`
	Dates           []string `json:"dates"`
	LocationID      int64    `json:"location_id"`
	EventID         int64    `json:"event_id"`
	TaskID          int64    `json:"task_id"`
	ClientID        *int64   `json:"client_id"`
	StartTime       string   `json:"start_time"`
	Hours           float64  `json:"hours"`
	RatePerHour     float64  `json:"rate_per_hour"`
	IsPublicHoliday bool     `json:"is_public_holiday"`
}

func (r *CreateEntriesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee is required",
		})
	}

	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "dates",
			Message: "at least one date is required",
		})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dates",
				Message: "dates must use the YYYY-MM-DD format",
			})
			break
		}
	}

	if r.LocationID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}
	if r.EventID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "event_id",
			Message: "event_id is required",
		})
	}
	if r.TaskID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}

	if !validator.IsValidTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must use the 24h HH:MM format",
		})
	}

	if r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be greater than zero",
		})
	}
	if r.RatePerHour <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_hour",
			Message: "rate_per_hour must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEntryRequest carries a partial update. Nil fields keep their
// current value.
type UpdateEntryRequest struct {
	ID              int64    `json:"-"`
	Date            *string  `json:"date"`
	LocationID      *int64   `json:"location_id"`
	EventID         *int64   `json:"event_id"`
	TaskID          *int64   `json:"task_id"`
	ClientID        *int64   `json:"client_id"`
	StartTime       *string  `json:"start_time"`
	Hours           *float64 `json:"hours"`
	RatePerHour     *float64 `json:"rate_per_hour"`
	IsPublicHoliday *bool    `json:"is_public_holiday"`
	Invoiced        *bool    `json:"invoiced"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must use the YYYY-MM-DD format",
			})
		}
	}
	if r.StartTime != nil && !validator.IsValidTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must use the 24h HH:MM format",
		})
	}
	if r.Hours != nil && *r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be greater than zero",
		})
	}
	if r.RatePerHour != nil && *r.RatePerHour <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_hour",
			Message: "rate_per_hour must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InvoiceUpdateRequest flips the invoiced flag on a set of entries.
type InvoiceUpdateRequest struct {
	IDs      []int64 `json:"ids"`
	Invoiced bool    `json:"invoiced"`
}

func (r *InvoiceUpdateRequest) Validate() error {
	if len(r.IDs) == 0 {
		return validator.ValidationErrors{{
			Field:   "ids",
			Message: "at least one entry id is required",
		}}
	}
	return nil
}

// BackfillNotificationsRequest queues WhatsApp jobs for entries in the date
// range that have none yet.
type BackfillNotificationsRequest struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

func (r *BackfillNotificationsRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.DateFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must use the YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.DateTo); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must use the YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// FILTERS
// ========================================

// ListFilter drives the entries listings. EmployeeID is filled from the
// JWT for role "2" callers so they only see their own rows.
type ListFilter struct {
	LocationIDs []int64
	Invoiced    *bool
	EmployeeID  *int64
	UserID      *int64
	DateFrom    *time.Time
	DateTo      *time.Time
	Page        int
	PageSize    int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 20
	}
	// A per-user view without an explicit range shows the current week.
	if f.UserID != nil && f.DateFrom == nil && f.DateTo == nil {
		from, to := WeekRange(time.Now())
		f.DateFrom = &from
		f.DateTo = &to
	}
}

// WeekRange returns the Monday and Sunday of the ISO week containing t,
// truncated to dates.
func WeekRange(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := day.AddDate(0, 0, 1-weekday)
	return monday, monday.AddDate(0, 0, 6)
}

// FilterOptionsFilter scopes the filter-option bundle to matching rows.
type FilterOptionsFilter struct {
	Year         *int
	Month        *string
	EmployeeIDs  []int64
	LocationID   *int64
	EventID      *int64
	TaskID       *int64
	ClientID     *int64
	Rate         *string
	RatesPerHour []float64
}

// ========================================
// RESPONSES
// ========================================

type EntryResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	Username     *string `json:"username,omitempty"`
	Date         string  `json:"date"`
	LocationID   int64   `json:"location_id"`
	LocationName *string `json:"location_name,omitempty"`
	EventID      int64   `json:"event_id"`
	EventName    *string `json:"event_name,omitempty"`
	TaskID       int64   `json:"task_id"`
	TaskName     *string `json:"task_name,omitempty"`
	ClientID     *int64  `json:"client_id,omitempty"`
	ClientName   *string `json:"client_name,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	RatePerHour  float64 `json:"rate_per_hour"`
	Rate         string  `json:"rate"`
	Hours        float64 `json:"hours"`
	Cost         float64 `json:"cost"`
	Year         int     `json:"year"`
	Month        string  `json:"month"`
	ISOWeek      int     `json:"iso_week"`
	Invoiced     bool    `json:"invoiced"`
}

func ToEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		Username:     e.Username,
		Date:         e.Date.Format("2006-01-02"),
		LocationID:   e.LocationID,
		LocationName: e.LocationName,
		EventID:      e.EventID,
		EventName:    e.EventName,
		TaskID:       e.TaskID,
		TaskName:     e.TaskName,
		ClientID:     e.ClientID,
		ClientName:   e.ClientName,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		RatePerHour:  e.RatePerHour,
		Rate:         e.Rate,
		Hours:        e.Hours,
		Cost:         e.Cost,
		Year:         e.Year,
		Month:        e.Month,
		ISOWeek:      e.ISOWeek,
		Invoiced:     e.Invoiced,
	}
}

type CreateEntriesResponse struct {
	Inserted int  `json:"inserted"`
	Skipped  int  `json:"skipped"`
	Complete bool `json:"complete"`
}

type LogResponse struct {
	ID          int64   `json:"id"`
	TimesheetID int64   `json:"timesheet_id"`
	UserID      int64   `json:"user_id"`
	Username    *string `json:"username,omitempty"`
	Action      string  `json:"action"`
	Detail      string  `json:"detail"`
	CreatedAt   string  `json:"created_at"`
}

func ToLogResponse(l LogEntry) LogResponse {
	return LogResponse{
		ID:          l.ID,
		TimesheetID: l.TimesheetID,
		UserID:      l.UserID,
		Username:    l.Username,
		Action:      l.Action,
		Detail:      l.Detail,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

type ShiftDetailResponse struct {
	Entry EntryResponse `json:"entry"`
	Logs  []LogResponse `json:"logs"`
}

// Option is one id/name pair for filter dropdowns.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FilterOptionsResponse bundles everything the filter sidebar needs.
type FilterOptionsResponse struct {
	Locations    []Option  `json:"locations"`
	Events       []Option  `json:"events"`
	Tasks        []Option  `json:"tasks"`
	Clients      []Option  `json:"clients"`
	Employees    []Option  `json:"employees"`
	RatesPerHour []float64 `json:"rates_per_hour"`
	Years        []int     `json:"years"`
	Months       []string  `json:"months"`
	Templates    []Option  `json:"templates"`
}

// DetailsResponse bundles the reference data the entry form needs.
type DetailsResponse struct {
	Locations   []LocationDetail `json:"locations"`
	Events      []Option         `json:"events"`
	Tasks       []Option         `json:"tasks"`
	Clients     []ClientDetail   `json:"clients"`
	MaxWageRate float64          `json:"max_wage_rate"`
}

type LocationDetail struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Rate string `json:"rate"`
}

type ClientDetail struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Rate string `json:"rate"`
}

type ImportResult struct {
	Inserted     int      `json:"inserted"`
	CreatedUsers int      `json:"created_users"`
	Errors       []string `json:"errors,omitempty"`
}
