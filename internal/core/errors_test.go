package core

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "with field",
			err: &ValidationError{
				Field:   "EARSLINT_WORKERS",
				Message: "must be an integer",
				Err:     baseErr,
			},
			expected: "EARSLINT_WORKERS: must be an integer",
		},
		{
			name: "without field",
			err: &ValidationError{
				Message: "invalid input",
				Err:     baseErr,
			},
			expected: "invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.expected)
			}

			// Test Unwrap
			if !errors.Is(tt.err, baseErr) {
				t.Error("ValidationError should wrap base error")
			}
		})
	}
}

func TestInputError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *InputError
		expected string
	}{
		{
			name:     "with path",
			err:      &InputError{Path: "reqs.xlsx", Message: "no data found", Err: baseErr},
			expected: "input reqs.xlsx: no data found",
		},
		{
			name:     "without path",
			err:      &InputError{Message: "no data found", Err: baseErr},
			expected: "input: no data found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("InputError.Error() = %v, want %v", got, tt.expected)
			}
			if !errors.Is(tt.err, baseErr) {
				t.Error("InputError should wrap base error")
			}
		})
	}
}

func TestExportError(t *testing.T) {
	baseErr := errors.New("base error")

	err := &ExportError{
		Path:    "out.csv",
		Message: "rename failed",
		Err:     baseErr,
	}

	expected := "export out.csv: rename failed"
	if got := err.Error(); got != expected {
		t.Errorf("ExportError.Error() = %v, want %v", got, expected)
	}

	if !errors.Is(err, baseErr) {
		t.Error("ExportError should wrap base error")
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &InputError{Path: "a.csv", Message: "bad"})

	var inputErr *InputError
	if !errors.As(wrapped, &inputErr) {
		t.Fatal("errors.As should find InputError")
	}
	if inputErr.Path != "a.csv" {
		t.Errorf("Path = %v, want a.csv", inputErr.Path)
	}
}
