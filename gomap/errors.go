package gomap

import "fmt"

// ConvertError represents a Go value that cannot be represented in IR.
type ConvertError struct {
	FieldPath string // Field path (e.g., "spec.containers.name")
	Message   string
	Err       error
}

func (e *ConvertError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("convert error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("convert error: %s", e.Message)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
