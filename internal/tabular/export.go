package tabular

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"earslint/internal/core"
	"earslint/pkg/schema"
)

// Appended export column headers.
const (
	CategoryHeader    = "EARS Category"
	PunctuationHeader = "Punctuation Check"
	IssuesHeader      = "Issues"
)

// DefaultExportName is used when the source file name is unknown.
const DefaultExportName = "requirements_EARS_classified.xlsx"

// ExportOptions control the export document.
type ExportOptions struct {
	IncludeIssues bool // Append an Issues column, entries joined by "; "
}

// ExportPath derives the export file name from the source path:
// reqs.xlsx becomes reqs_EARS_classified.xlsx in the same directory.
func ExportPath(source string) string {
	if source == "" {
		return DefaultExportName
	}
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + "_EARS_classified" + ext
}

// BuildExport returns the export table: the original columns followed by the
// verdict columns. Verdicts must be in record order.
func BuildExport(s *Sheet, verdicts []schema.Verdict, opts ExportOptions) ([][]string, error) {
	if len(verdicts) != len(s.Records) {
		return nil, fmt.Errorf("have %d verdicts for %d records", len(verdicts), len(s.Records))
	}

	header := append([]string{}, s.Headers...)
	header = append(header, CategoryHeader, PunctuationHeader)
	if opts.IncludeIssues {
		header = append(header, IssuesHeader)
	}

	out := make([][]string, 0, len(verdicts)+1)
	out = append(out, header)

	for i, v := range verdicts {
		row := make([]string, len(s.Headers), len(header))
		copy(row, s.Records[i])
		row[NameColumn] = v.Name
		row[TextColumn] = v.Text

		row = append(row, v.Category, string(v.Punctuation))
		if opts.IncludeIssues {
			row = append(row, joinIssues(v.Issues))
		}
		out = append(out, row)
	}

	return out, nil
}

// Export writes the classified document to path atomically. The format
// follows the path's extension.
func Export(path string, s *Sheet, verdicts []schema.Verdict, opts ExportOptions) error {
	format, err := DetectFormat(path)
	if err != nil {
		return &core.ExportError{Path: path, Message: "unsupported export type", Err: err}
	}

	rows, err := BuildExport(s, verdicts, opts)
	if err != nil {
		return &core.ExportError{Path: path, Message: "build export", Err: err}
	}

	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		err = WriteCSV(&buf, rows)
	case FormatXLSX:
		err = WriteXLSX(&buf, ExportSheetName, rows)
	}
	if err != nil {
		return &core.ExportError{Path: path, Message: "encode export", Err: err}
	}

	w, err := NewAtomicWriter(path)
	if err != nil {
		return &core.ExportError{Path: path, Message: "stage export", Err: err}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		if rbErr := w.Rollback(); rbErr != nil {
			log.Printf("rollback failed: %v", rbErr)
		}
		return &core.ExportError{Path: path, Message: "write export", Err: err}
	}
	if err := w.Commit(); err != nil {
		return &core.ExportError{Path: path, Message: "commit export", Err: err}
	}

	return nil
}

func joinIssues(issues []schema.Issue) string {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = string(issue)
	}
	return strings.Join(parts, "; ")
}
