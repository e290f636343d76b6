package shared

import "errors"

var (
	// ErrUnknownStation is returned when a station name is not in the trade hub table.
	// This is a configuration error and is fatal to the calling analysis.
	ErrUnknownStation = errors.New("unknown station")
)
