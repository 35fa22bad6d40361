package feed

import "errors"

// Feed domain errors
var (
	ErrPostNotFound = errors.New("post not found")
)
