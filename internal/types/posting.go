// Package types provides type definitions for structured data used throughout the job-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Posting represents a single job posting record loaded from the postings file
type Posting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ApplyURL    string `json:"apply_url,omitempty"`
	Source      string `json:"source,omitempty"`
}
