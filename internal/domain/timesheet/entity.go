package timesheet

import (
	"time"
)

const (
	RateNormal = "normal"
	RateDouble = "double"
)

// Entry is one shift on the timesheet. StartTime and EndTime are stored as
// zero-padded "HH:MM" strings; Date carries the calendar day only.
type Entry struct {
	ID             int64
	EmployeeID     int64
	Date           time.Time
	LocationID     int64
	EventID        int64
	TaskID         int64
	ClientID       *int64
	StartTime      string
	EndTime        string
	RatePerHour    float64
	Rate           string
	Hours          float64
	Cost           float64
	Year           int
	Month          string
	ISOWeek        int
	Invoiced       bool
	CreatedBy      int64
	LastModifiedBy *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined columns for listings and reports
	Username     *string
	EmployeeName *string
	Mobile       *string
	LocationName *string
	EventName    *string
	TaskName     *string
	ClientName   *string
	ClientEmail  *string
}

// LogEntry is one audit-log row recording a change to a timesheet entry.
type LogEntry struct {
	ID          int64
	TimesheetID int64
	UserID      int64
	Action      string
	Detail      string
	CreatedAt   time.Time

	Username *string
}

// Audit log actions
const (
	LogActionCreate  = "create"
	LogActionUpdate  = "update"
	LogActionDelete  = "delete"
	LogActionInvoice = "invoice"
	LogActionImport  = "import"
)
