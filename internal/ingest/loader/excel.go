package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the case export workbook.
const (
	SheetDump    = "Dump"
	SheetWO      = "WO"
	SheetMO      = "MO"
	SheetMOItems = "MO Items"
	SheetSO      = "SO"
)

// The export tool pads every sheet with three presentation columns; real
// data starts at column D.
const leadingFillerColumns = 3

// Workbook wraps an open case-export workbook.
type Workbook struct {
	file *excelize.File
}

// OpenWorkbook reads an .xlsx/.xls stream.
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{file: f}, nil
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// FirstSheet returns the workbook's first sheet as a Table. Single-table
// feeds are exported without the presentation padding of the case export,
// so no columns are stripped.
func (w *Workbook) FirstSheet() (Table, error) {
	name := w.file.GetSheetName(0)
	if name == "" {
		return Table{}, nil
	}

	rows, err := w.file.GetRows(name)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return NewTable(rows), nil
}

// Sheet returns the named sheet as a Table with the filler columns
// removed. A missing sheet yields an empty table, not an error: exports
// routinely omit sheets that had no rows.
func (w *Workbook) Sheet(name string) (Table, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return Table{}, nil
	}

	rows, err := w.file.GetRows(name)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", name, err)
	}

	trimmed := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) <= leadingFillerColumns {
			trimmed = append(trimmed, nil)
			continue
		}
		trimmed = append(trimmed, row[leadingFillerColumns:])
	}
	return NewTable(trimmed), nil
}
