// Package report renders validated containers and their validation messages
// for display. It consumes only the stable surfaces of the core: container
// enumeration order (first-insertion order of distinct properties) and the
// message fields severity, property name, and resolved text, independent of
// how values were resolved.
//
// A Renderer is configured once from defaults merged with functional options
// and is immutable afterwards; the same layered local-over-default precedence
// the metadata package uses for value resolution applies to renderer
// configuration. Two formats are supported: an aligned text listing and a
// YAML document. Number rendering of values can be localized with a
// language.Tag; message texts always keep their invariant form.
package report
