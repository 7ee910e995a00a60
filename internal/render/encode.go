package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"earslint/pkg/schema"
)

// Format names an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", s)
	}
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, report *schema.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// YAML writes the report as YAML.
func YAML(w io.Writer, report *schema.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close YAML encoder: %w", err)
	}
	return nil
}

// Report writes the report in the requested format.
func Report(w io.Writer, report *schema.Report, format Format, maxWidth int) error {
	switch format {
	case FormatJSON:
		return JSON(w, report)
	case FormatYAML:
		return YAML(w, report)
	default:
		if err := Table(w, report.Verdicts, maxWidth); err != nil {
			return err
		}
		if len(report.Verdicts) == 0 {
			return nil
		}
		return Summary(w, report.Summary)
	}
}
