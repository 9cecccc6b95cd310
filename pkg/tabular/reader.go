package tabular

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/propkit/propkit/pkg/metadata"
)

// ReadSheet imports one worksheet into containers, one per data row. The
// first row is the header; headers are matched to mapping columns by name and
// unmapped headers are ignored. Empty cells leave the property absent, so an
// imported container distinguishes "cell was empty" (not defined) from "cell
// said null" (defined null). Parse and construction failures abort the import
// with a cell-addressed error.
func ReadSheet(r io.Reader, sheet string, m *Mapping) ([]*metadata.Container, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Join(ErrOpenDocument, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Join(ErrSheetNotFound, fmt.Errorf("sheet %q: %w", sheet, err))
	}
	if len(rows) == 0 {
		return nil, errors.Join(ErrMissingHeader, fmt.Errorf("sheet %q is empty", sheet))
	}

	type boundColumn struct {
		col   Column
		index int
	}
	var bound []boundColumn
	for i, header := range rows[0] {
		if col, ok := m.byHeader(header); ok {
			bound = append(bound, boundColumn{col: col, index: i})
		}
	}
	if len(bound) == 0 {
		return nil, errors.Join(ErrMissingHeader,
			fmt.Errorf("sheet %q has no mapped columns", sheet))
	}

	containers := make([]*metadata.Container, 0, len(rows)-1)
	for rowIdx, row := range rows[1:] {
		c := metadata.NewContainer()
		for _, b := range bound {
			if b.index >= len(row) || row[b.index] == "" {
				continue
			}
			cell := cellName(b.index+1, rowIdx+2)
			value, err := b.col.Parser(row[b.index])
			if err != nil {
				return nil, errors.Join(ErrCellParse, fmt.Errorf("cell %s: %w", cell, err))
			}
			c, err = c.WithValue(b.col.Property, value)
			if err != nil {
				return nil, errors.Join(ErrCellParse, fmt.Errorf("cell %s: %w", cell, err))
			}
		}
		containers = append(containers, c)
	}
	return containers, nil
}

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("(%d,%d)", col, row)
	}
	return name
}
