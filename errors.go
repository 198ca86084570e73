package jsonfmt

import "errors"

var (
	// ErrInvalidJSON reports text that the codec cannot parse. Formatting
	// fails fast on it; no partial output is produced.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrEmptyInput reports input that is empty or all whitespace. It is
	// non-fatal: the operation yields no value and callers normally skip
	// the item with a warning instead of aborting.
	ErrEmptyInput = errors.New("input is empty or contains only whitespace")
)
