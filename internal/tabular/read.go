package tabular

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"earslint/internal/core"
)

// Format is a supported table file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file extension to a format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return "", &core.InputError{Path: path, Message: "legacy .xls workbooks are not supported, save as .xlsx"}
	default:
		return "", &core.InputError{Path: path, Message: "unsupported file type, expected .csv or .xlsx"}
	}
}

// Read loads a table from path. sheet selects the XLSX worksheet and is
// ignored for CSV.
func Read(path, sheet string) (*Sheet, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &core.InputError{Path: path, Message: "failed to open file", Err: err}
	}
	defer file.Close()

	var s *Sheet
	switch format {
	case FormatCSV:
		s, err = ReadCSV(file)
	case FormatXLSX:
		s, err = ReadXLSX(file, sheet)
	default:
		return nil, fmt.Errorf("unhandled format: %s", format)
	}

	if err != nil {
		var inputErr *core.InputError
		if errors.As(err, &inputErr) && inputErr.Path == "" {
			inputErr.Path = path
		}
		return nil, err
	}
	return s, nil
}
