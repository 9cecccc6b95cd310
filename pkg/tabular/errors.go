package tabular

import "errors"

// Predefined errors for the tabular package.
var (
	// ErrOpenDocument indicates the input is not a readable xlsx document.
	ErrOpenDocument = errors.New("cannot open tabular document")

	// ErrSheetNotFound indicates the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("worksheet not found")

	// ErrMissingHeader indicates a sheet without a usable header row.
	ErrMissingHeader = errors.New("sheet has no mapped header row")

	// ErrCellParse indicates a cell whose text could not become a typed value.
	ErrCellParse = errors.New("cell is not convertible to property kind")

	// ErrWriteDocument indicates a failure while producing the xlsx output.
	ErrWriteDocument = errors.New("cannot write tabular document")
)
