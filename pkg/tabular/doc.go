// Package tabular imports and exports metadata containers as xlsx worksheets
// using github.com/xuri/excelize/v2.
//
// A Mapping, usually derived from a metadata.Schema with NewMapping, binds
// sheet headers to properties and parsers. ReadSheet turns each data row into
// a container of Defined values, leaving properties absent for empty cells so
// validation's existence rules see the truth of the source document.
// WriteSheet renders containers back in stable column order, resolving values
// with the mapping's Search policy (stored values only, by default).
//
// Explicit nulls are written as the literal "null" and read back as explicit
// nulls, so a write-then-read round-trip preserves the three value states:
// present, null, and absent.
package tabular
