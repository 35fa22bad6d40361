package timesheet

import (
	"context"
	"io"
)

// Service defines business logic for timesheet operations. The actorID in
// mutating calls is the authenticated user recorded in the audit log.
type Service interface {
	SearchEmployees(ctx context.Context, username string) ([]Option, error)

	Details(ctx context.Context) (DetailsResponse, error)

	FilterOptions(ctx context.Context, filter FilterOptionsFilter) (FilterOptionsResponse, error)

	// CreateEntries adds one shift per employee per date. A duplicate in a
	// single-entry request returns ErrDuplicateEntry; duplicates inside a
	// larger batch are skipped.
	CreateEntries(ctx context.Context, req CreateEntriesRequest, actorID int64) (CreateEntriesResponse, error)

	UpdateEntry(ctx context.Context, req UpdateEntryRequest, actorID int64) (EntryResponse, error)

	DeleteEntry(ctx context.Context, id int64, actorID int64) error

	UpdateInvoices(ctx context.Context, req InvoiceUpdateRequest, actorID int64) (int, error)

	ListEntries(ctx context.Context, filter ListFilter) ([]EntryResponse, int64, error)

	ListLogs(ctx context.Context, page, pageSize int) ([]LogResponse, int64, error)

	GetShift(ctx context.Context, id int64) (ShiftDetailResponse, error)

	// BackfillNotifications queues WhatsApp jobs for entries in the range
	// that have none and returns how many jobs were created.
	BackfillNotifications(ctx context.Context, req BackfillNotificationsRequest) (int, error)

	// Import reads an xlsx workbook and inserts the rows it describes,
	// creating referenced users and reference data on the fly.
	Import(ctx context.Context, file io.Reader, actorID int64) (ImportResult, error)

	// ImportTemplate renders the downloadable xlsx template.
	ImportTemplate(ctx context.Context) ([]byte, error)
}
