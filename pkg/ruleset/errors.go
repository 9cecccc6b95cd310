package ruleset

import "errors"

// Predefined errors for the ruleset package.
var (
	// ErrInvalidDocument indicates YAML that is not a rule definition document.
	ErrInvalidDocument = errors.New("invalid rule definition document")

	// ErrUnknownType indicates a property type outside the closed kind set.
	ErrUnknownType = errors.New("unknown property type")

	// ErrUnknownRule indicates a rule name with no registered builder.
	ErrUnknownRule = errors.New("unknown rule name")

	// ErrUnknownSeverity indicates a severity other than error or warning.
	ErrUnknownSeverity = errors.New("unknown severity")

	// ErrInvalidRule indicates a rule whose parameters do not fit the property.
	ErrInvalidRule = errors.New("invalid rule parameters")
)
