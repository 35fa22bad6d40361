package report

import "errors"

// Report domain errors
var (
	ErrTemplateNotFound = errors.New("report template not found")
	ErrNoRows           = errors.New("no rows match the report filter")
	ErrNoRecipients     = errors.New("no recipients resolved for report mail")
	ErrUnknownMailKind  = errors.New("report mail kind must be employee or client")
	ErrUnknownColumn    = errors.New("report template references an unknown column")
)
