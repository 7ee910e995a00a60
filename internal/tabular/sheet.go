// Package tabular reads requirement tables from CSV and XLSX files and writes
// the classified export document.
package tabular

import (
	"earslint/internal/core"
	"earslint/pkg/schema"
)

// Column positions of the requirement name and text.
const (
	NameColumn = 0
	TextColumn = 1
)

// Sheet is a table whose first row holds the headers.
type Sheet struct {
	Name    string
	Headers []string
	Records [][]string

	// nonText marks records whose text cell holds a number, boolean, date or
	// other non-string value.
	nonText map[int]bool
}

// newSheet splits raw cells into headers and records.
func newSheet(name string, raw [][]string) (*Sheet, error) {
	if len(raw) == 0 {
		return nil, &core.InputError{Message: "no data found in the file"}
	}

	headers := raw[0]
	if len(headers) < 2 {
		return nil, &core.InputError{Message: "file must have at least two columns: Name/ID and Requirements text"}
	}

	return &Sheet{
		Name:    name,
		Headers: headers,
		Records: raw[1:],
	}, nil
}

// Rows extracts one requirement per record. Empty names become REQ_<n>;
// missing, empty or non-string text cells become rows without text.
func (s *Sheet) Rows() []schema.Row {
	rows := make([]schema.Row, len(s.Records))
	for i, record := range s.Records {
		name := cell(record, NameColumn)
		if name == "" {
			name = schema.DefaultRowName(i + 1)
		}

		row := schema.Row{Name: name}
		if text := cell(record, TextColumn); text != "" && !s.nonText[i] {
			row.Text = &text
		}
		rows[i] = row
	}
	return rows
}

// cell returns record[i], or "" when the record is shorter.
func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
