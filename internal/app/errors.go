package app

import "errors"

// Sentinel kinds for pipeline errors.
var (
	ErrNoUpstream = errors.New("no upstream client configured")
)
