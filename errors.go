package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// State errors
	ErrBusy = errors.New("cubesim: move already in flight")

	// Parsing and validation errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")
	ErrInvalidMove     = errors.New("cubesim: move outside the quarter-turn set")
)
