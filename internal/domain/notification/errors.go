package notification

import "errors"

// Notification domain errors
var (
	ErrSettingNotFound = errors.New("push setting not found")
	ErrTokenMissing    = errors.New("whatsapp access token is not configured")
)
