package tabular

import (
	"github.com/propkit/propkit/pkg/metadata"
	"github.com/propkit/propkit/pkg/parsing"
)

// Column binds a sheet header to a property and the parser used for its
// cells.
type Column struct {
	Header   string
	Property *metadata.Property
	Parser   parsing.Func
}

// Mapping is the ordered column set of a sheet. Column order defines export
// order; import matches columns to headers by name, ignoring unmapped
// headers.
type Mapping struct {
	columns []Column
	// Search selects how the writer resolves values. The zero value
	// (LocalOnly) writes only what was actually stored, leaving defaults and
	// calculated values out of the document.
	Search metadata.Search
}

// NewMapping derives a mapping from a schema: one column per property in
// schema order, headed by the property name, parsed by the kind's default
// parser.
func NewMapping(schema *metadata.Schema) *Mapping {
	props := schema.Properties()
	columns := make([]Column, 0, len(props))
	for _, p := range props {
		columns = append(columns, Column{
			Header:   p.Name(),
			Property: p,
			Parser:   parsing.ForKind(p.Kind()),
		})
	}
	return &Mapping{columns: columns}
}

// WithColumn appends or replaces a column by header, e.g. to install a custom
// parser. A nil parser falls back to the property kind's default.
func (m *Mapping) WithColumn(col Column) *Mapping {
	if col.Parser == nil && col.Property != nil {
		col.Parser = parsing.ForKind(col.Property.Kind())
	}
	next := &Mapping{columns: make([]Column, len(m.columns)), Search: m.Search}
	copy(next.columns, m.columns)
	for i := range next.columns {
		if next.columns[i].Header == col.Header {
			next.columns[i] = col
			return next
		}
	}
	next.columns = append(next.columns, col)
	return next
}

// Columns returns the columns in order.
func (m *Mapping) Columns() []Column {
	out := make([]Column, len(m.columns))
	copy(out, m.columns)
	return out
}

func (m *Mapping) byHeader(header string) (Column, bool) {
	for _, col := range m.columns {
		if col.Header == header {
			return col, true
		}
	}
	return Column{}, false
}
