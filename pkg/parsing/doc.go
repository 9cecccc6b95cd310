// Package parsing converts raw text into typed metadata values. It is the
// boundary used by tabular import: one parser per value kind, selected with
// ForKind, each returning a checked metadata.Value or ErrNotParsable.
//
// Parsers trim surrounding whitespace and map the literal "null"
// (case-insensitive) to an explicit null of their kind. Empty-cell policy is
// deliberately not handled here: whether an empty string means "absent" or
// "empty value" belongs to the caller.
package parsing
