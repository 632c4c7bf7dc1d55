// Package profile provides functionality to load and validate profile documents.
package profile

import "fmt"

// LoadError represents an error during file I/O or YAML parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
