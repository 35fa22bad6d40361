package master

import "errors"

// Master data errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateName = errors.New("a record with this name already exists")
	ErrInvalidRate   = errors.New("rate must be normal or double")
	ErrInUse         = errors.New("record is referenced by timesheet entries")
	ErrUnknownKind   = errors.New("attribute kind must be qualification, skill or language")
)
