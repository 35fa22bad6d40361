package settings

import "errors"

// Settings domain errors
var (
	ErrSettingsNotFound   = errors.New("settings row not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrFileTooLarge       = errors.New("uploaded file exceeds the size limit")
)
