package stats

import "errors"

var (
	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("stats: internal error")
)
