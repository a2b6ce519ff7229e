// Package loader turns uploaded spreadsheet and CSV bytes into typed
// record collections. It is the only producer of casedata records: rows
// lacking their identifier are dropped, every string cell is trimmed, and
// timestamp cells are normalized here so the engine never sees raw text.
package loader

import "strings"

// Table is a parsed tabular file: a header row mapping column names to
// positions, and the data rows below it.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// NewTable builds a Table from raw rows. The first row is the header;
// header names are trimmed and lower-cased for lookup. An empty input
// yields an empty table.
func NewTable(raw [][]string) Table {
	if len(raw) == 0 {
		return Table{}
	}

	columns := make(map[string]int, len(raw[0]))
	for i, name := range raw[0] {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, exists := columns[key]; !exists {
			columns[key] = i
		}
	}

	return Table{columns: columns, rows: raw[1:]}
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Cell returns the trimmed value of the named column in row i, or "" when
// the column is absent or the row is short.
func (t Table) Cell(i int, column string) string {
	idx, ok := t.columns[column]
	if !ok {
		return ""
	}
	row := t.rows[i]
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
