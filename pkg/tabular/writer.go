package tabular

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/propkit/propkit/pkg/metadata"
)

// DefaultSheet is the worksheet name used when none is given.
const DefaultSheet = "Sheet1"

// WriteSheet exports containers to one worksheet: a header row in mapping
// order, then one row per container. Values are resolved with the mapping's
// Search policy; absent properties leave the cell empty and explicit nulls
// are written as the "null" literal so a round-trip preserves both states.
func WriteSheet(w io.Writer, sheet string, m *Mapping, containers []*metadata.Container) error {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheet {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return errors.Join(ErrWriteDocument, err)
		}
		f.SetActiveSheet(idx)
		if err := f.DeleteSheet(DefaultSheet); err != nil {
			return errors.Join(ErrWriteDocument, err)
		}
	}

	for i, col := range m.columns {
		cell := cellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return errors.Join(ErrWriteDocument, err)
		}
	}

	for rowIdx, c := range containers {
		for colIdx, col := range m.columns {
			pv, err := c.Resolve(col.Property, m.Search)
			if err != nil {
				return errors.Join(ErrWriteDocument, err)
			}
			if !pv.HasValue() {
				continue
			}
			cell := cellName(colIdx+1, rowIdx+2)
			v := pv.Value()
			var cellValue any
			if v.IsNull() {
				cellValue = "null"
			} else if v.Kind() == metadata.KindTime {
				// Avoid excelize's serial-date styling; keep the invariant text
				// form that the time parser round-trips.
				cellValue = v.Format()
			} else {
				cellValue = v.Native()
			}
			if err := f.SetCellValue(sheet, cell, cellValue); err != nil {
				return errors.Join(ErrWriteDocument, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Join(ErrWriteDocument, err)
	}
	return nil
}
