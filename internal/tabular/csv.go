package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"earslint/internal/core"
)

// ReadCSV reads a CSV table. Records may have differing lengths.
func ReadCSV(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, &core.InputError{Message: "failed to parse CSV", Err: err}
	}

	return newSheet("", raw)
}

// WriteCSV writes rows as CSV.
func WriteCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	return nil
}
