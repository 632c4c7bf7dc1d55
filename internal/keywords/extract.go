// Package keywords provides frequency-based keyword extraction from posting text.
package keywords

import (
	"sort"

	"github.com/jonathan/job-tailor/internal/textproc"
)

// Extraction widths used by downstream consumers. Selection benefits from a
// wider candidate signal than the handful of keywords quoted in a cover letter.
const (
	// DefaultSelectTopK is the keyword count used when scoring bullets for selection
	DefaultSelectTopK = 60
	// DefaultLetterTopK is the keyword count interpolated into the cover letter
	DefaultLetterTopK = 10
)

// Extract returns at most topK distinct tokens from text, ranked by descending
// frequency. Frequency ties break on first-occurrence order in the tokenized
// sequence, so identical input always yields identical output. Empty text
// yields an empty result, not an error.
func Extract(text string, topK int) []string {
	tokens := textproc.Tokenize(text)
	if len(tokens) == 0 || topK <= 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	distinct := make([]string, 0, len(tokens))

	for i, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
			distinct = append(distinct, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		ci, cj := counts[distinct[i]], counts[distinct[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[distinct[i]] < firstSeen[distinct[j]]
	})

	if len(distinct) > topK {
		distinct = distinct[:topK]
	}

	return distinct
}

// Set provides membership tests over an extracted keyword sequence.
// Keyword sets are derived strictly from posting text and never persisted.
type Set map[string]struct{}

// NewSet builds a Set from an extracted keyword sequence
func NewSet(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether the word is a member of the set
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
