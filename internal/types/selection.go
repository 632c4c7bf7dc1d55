// Package types provides type definitions for structured data used throughout the job-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SelectedBullet represents one bullet chosen for rendering, carrying enough of
// its owning experience to group output under the right header.
type SelectedBullet struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Bullet  Bullet `json:"bullet"`
	Score   int    `json:"score"`
}

// SelectionArtifact is the JSON artifact written next to the rendered outputs,
// recording what was selected for a posting and why.
type SelectionArtifact struct {
	RunID        string           `json:"run_id"`
	PostingID    string           `json:"posting_id"`
	KeywordCount int              `json:"keyword_count"`
	Selected     []SelectedBullet `json:"selected"`
}
