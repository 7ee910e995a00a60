package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"earslint/internal/core"
)

// ExportSheetName is the worksheet name of the classified XLSX export.
const ExportSheetName = "EARS_classified"

// ReadXLSX reads the named worksheet, or the first one when sheet is empty.
func ReadXLSX(r io.Reader, sheet string) (s *Sheet, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &core.InputError{
			Message: "failed to read Excel file, ensure it is a valid .xlsx file",
			Err:     err,
		}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &core.InputError{Message: "failed to close workbook", Err: closeErr}
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &core.InputError{Message: "workbook has no sheets"}
		}
		sheet = sheets[0]
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, &core.InputError{
			Message: fmt.Sprintf("failed to read sheet %q", sheet),
			Err:     err,
		}
	}

	s, err = newSheet(sheet, raw)
	if err != nil {
		return nil, err
	}
	if s.nonText, err = nonTextRecords(f, sheet, s.Records); err != nil {
		return nil, err
	}
	return s, nil
}

// nonTextRecords finds records whose text cell is typed as something other
// than a string. Cells without a type attribute are numbers.
func nonTextRecords(f *excelize.File, sheet string, records [][]string) (map[int]bool, error) {
	nonText := make(map[int]bool)
	for i, record := range records {
		if cell(record, TextColumn) == "" {
			continue
		}

		ref, err := excelize.CoordinatesToCellName(TextColumn+1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell reference for row %d: %w", i+2, err)
		}
		typ, err := f.GetCellType(sheet, ref)
		if err != nil {
			return nil, &core.InputError{
				Message: fmt.Sprintf("failed to read cell %s", ref),
				Err:     err,
			}
		}

		switch typ {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		default:
			nonText[i] = true
		}
	}
	return nonText, nil
}

// WriteXLSX writes rows to a single-sheet workbook.
func WriteXLSX(w io.Writer, sheet string, rows [][]string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell reference for row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, ref, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
