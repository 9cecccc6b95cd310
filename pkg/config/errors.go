package config

import "errors"

// Predefined errors for the config package.
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
