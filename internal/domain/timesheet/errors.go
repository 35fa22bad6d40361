package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrEntryNotFound     = errors.New("timesheet entry not found")
	ErrDuplicateEntry    = errors.New("an identical shift already exists")
	ErrNoEntriesInserted = errors.New("no entries were inserted")
	ErrForbidden         = errors.New("you are not allowed to access this entry")
	ErrImportInvalidFile = errors.New("uploaded file is not a valid xlsx workbook")
	ErrImportEmptyFile   = errors.New("uploaded workbook contains no data rows")
	ErrImportDuplicates  = errors.New("uploaded workbook contains rows that already exist")
)
