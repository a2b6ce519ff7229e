package loader

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads a CSV stream into a Table. Rows may have varying field
// counts; short rows read missing cells as empty.
func ParseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", err)
	}
	return NewTable(rows), nil
}
