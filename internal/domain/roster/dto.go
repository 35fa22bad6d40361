package roster

import "time"

// Shift is one roster row: a timesheet entry joined with its names and a
// display time range.
type Shift struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	Username     string  `json:"username"`
	Date         string  `json:"date"`
	ShiftTime    string  `json:"shift_time"`
	LocationName string  `json:"location_name"`
	EventName    string  `json:"event_name"`
	TaskName     string  `json:"task_name"`
	ClientName   string  `json:"client_name,omitempty"`
	Hours        float64 `json:"hours"`
}

// Group keys accepted by the roster view.
const (
	GroupUsername = "username"
	GroupLocation = "location"
	GroupEvent    = "event"
	GroupTask     = "task"
	GroupClient   = "client"
	GroupDate     = "date"
)

// Filter narrows the roster listing.
type Filter struct {
	Date        *time.Time
	EmployeeIDs []int64
	LocationID  *int64
	ClientID    *int64
	EventID     *int64
	TaskID      *int64
	GroupBy     string
	Page        int
	PageSize    int
}

func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 50
	}
}

// Bucket is one grouped roster section.
type Bucket struct {
	Key    string  `json:"key"`
	Shifts []Shift `json:"shifts"`
}

type ViewResponse struct {
	Shifts     []Shift  `json:"shifts,omitempty"`
	Groups     []Bucket `json:"groups,omitempty"`
	TotalCount int64    `json:"total_count"`
}
