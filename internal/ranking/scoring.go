// Package ranking provides functionality to score resume bullets against a posting's keyword set.
package ranking

import (
	"strings"

	"github.com/jonathan/job-tailor/internal/keywords"
	"github.com/jonathan/job-tailor/internal/textproc"
	"github.com/jonathan/job-tailor/internal/types"
)

// Scoring weights. A tag is an authoritative signal of domain relevance (a
// human explicitly labeled it), so it outweighs an incidental lexical hit.
const (
	tagMatchWeight   = 3
	tokenMatchWeight = 1
)

// ScoreBullet computes the integer relevance score of one bullet against a
// keyword set: tagMatchWeight per tag found in the set (tags are lowercased
// but not otherwise normalized), plus tokenMatchWeight per text token found in
// the set. A bullet with no overlap scores 0. Pure and deterministic.
func ScoreBullet(bullet types.Bullet, kws keywords.Set) int {
	score := 0

	for _, tag := range bullet.Tags {
		if kws.Contains(strings.ToLower(tag)) {
			score += tagMatchWeight
		}
	}

	for _, tok := range textproc.Tokenize(bullet.Text) {
		if kws.Contains(tok) {
			score += tokenMatchWeight
		}
	}

	return score
}
