package jobs

import (
	"strings"

	"github.com/jonathan/job-tailor/internal/types"
)

// Rules holds the substring filters applied by the filter subcommand. All
// matching is case-insensitive substring containment, not exact match.
type Rules struct {
	// Locations match against the posting location; at least one must hit when any are given
	Locations []string
	// Include terms match against title+description; at least one must hit when any are given
	Include []string
	// Exclude terms match against title+description; any hit rejects the posting
	Exclude []string
}

// ParseRules builds Rules from the raw CLI flag values: a semicolon-separated
// location list and comma-separated include/exclude lists.
func ParseRules(locations, include, exclude string) Rules {
	return Rules{
		Locations: splitTerms(locations, ";"),
		Include:   splitTerms(include, ","),
		Exclude:   splitTerms(exclude, ","),
	}
}

// Matches reports whether a posting satisfies the include/exclude rules on its
// title and description and the location rules on its location.
func (r Rules) Matches(p types.Posting) bool {
	text := strings.ToLower(p.Title + " " + p.Description)

	for _, term := range r.Exclude {
		if strings.Contains(text, term) {
			return false
		}
	}

	if len(r.Include) > 0 && !containsAny(text, r.Include) {
		return false
	}

	if len(r.Locations) > 0 && !containsAny(strings.ToLower(p.Location), r.Locations) {
		return false
	}

	return true
}

// Filter returns the postings that satisfy the rules, preserving input order
func (r Rules) Filter(postings []types.Posting) []types.Posting {
	var matched []types.Posting
	for _, p := range postings {
		if r.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func splitTerms(raw, sep string) []string {
	var terms []string
	for _, t := range strings.Split(raw, sep) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
