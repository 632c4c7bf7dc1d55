// Package jobs provides loading, lookup, and filtering of job postings.
package jobs

import (
	"fmt"
	"strings"
)

// LoadError represents an error reading or parsing the postings file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load postings from %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load postings from %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// MissingColumnsError reports every required column absent from the header row
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("postings file %s is missing required columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

// LookupError reports a posting id that was not found in the source file
type LookupError struct {
	ID   string
	Path string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no posting with id %q in %s", e.ID, e.Path)
}
