package report

import "errors"

// Predefined errors for the report package.
var (
	// ErrRowMismatch indicates container and result slices of different lengths.
	ErrRowMismatch = errors.New("containers and validation results are not parallel")
)
