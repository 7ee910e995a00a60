package core

import "fmt"

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InputError represents an unreadable or malformed requirements source.
type InputError struct {
	Path    string
	Message string
	Err     error
}

func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("input %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("input: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure writing the classified document.
type ExportError struct {
	Path    string
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %s", e.Path, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
