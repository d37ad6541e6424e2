package bgg

import "errors"

// Sentinel kinds for upstream client errors.
var (
	// ErrUnavailable covers transport failures and unexpected statuses.
	ErrUnavailable = errors.New("game database unavailable")

	// ErrStillProcessing means the record was still materializing after
	// the re-poll budget was spent.
	ErrStillProcessing = errors.New("game details still processing")

	// ErrMalformedDetail means a detail document is missing or carries
	// unparsable required fields.
	ErrMalformedDetail = errors.New("malformed game detail")
)
