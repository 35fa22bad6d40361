package roster

import "errors"

var (
	ErrUnknownGroupKey = errors.New("unknown group key")
)
