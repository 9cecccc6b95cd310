package parsing

import "errors"

// Predefined errors for the parsing package.
var (
	// ErrNotParsable indicates text that cannot be converted to the target kind.
	ErrNotParsable = errors.New("text is not parsable as target kind")

	// ErrUnsupportedKind indicates a kind with no registered parser.
	ErrUnsupportedKind = errors.New("no parser for kind")
)
