package schema

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewReportID generates a new report ID in format RPT-{nanoid(10)}.
func NewReportID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RPT-%s", id), nil
}

// DefaultRowName is the name given to a data row whose name cell is empty.
// Rows are numbered from 1.
func DefaultRowName(index int) string {
	return fmt.Sprintf("REQ_%d", index)
}
