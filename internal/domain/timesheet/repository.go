package timesheet

import (
	"context"
	"time"
)

// Repository defines data access for timesheet entries and their audit log.
type Repository interface {
	// Create inserts an entry. The table carries a unique index over the
	// natural shift key, so an identical row reports inserted=false
	// instead of erroring.
	Create(ctx context.Context, entry Entry) (Entry, bool, error)

	// Exists reports whether a row with the same natural shift key is
	// already stored.
	Exists(ctx context.Context, entry Entry) (bool, error)

	GetByID(ctx context.Context, id int64) (Entry, error)

	Update(ctx context.Context, entry Entry) error

	Delete(ctx context.Context, id int64) error

	// List returns a joined page of entries plus the total match count.
	List(ctx context.Context, filter ListFilter) ([]Entry, int64, error)

	// SetInvoiced flips the invoiced flag on the given ids and returns the
	// ids actually updated.
	SetInvoiced(ctx context.Context, ids []int64, invoiced bool) ([]int64, error)

	// FilterOptions returns the distinct filter values present in rows
	// matching the filter, plus all years, months and templates.
	FilterOptions(ctx context.Context, filter FilterOptionsFilter) (FilterOptionsResponse, error)

	// EntryIDsWithoutJobs returns entry ids in the date range that have no
	// WhatsApp job yet.
	EntryIDsWithoutJobs(ctx context.Context, from, to time.Time) ([]Entry, error)

	CreateLog(ctx context.Context, log LogEntry) error
	ListLogs(ctx context.Context, page, pageSize int) ([]LogEntry, int64, error)
	LogsByTimesheetID(ctx context.Context, timesheetID int64) ([]LogEntry, error)
}
