// Package selection provides the two-phase bullet selection algorithm: a
// per-experience capped pass followed by a globally capped, deduplicated merge.
package selection

import (
	"sort"

	"github.com/jonathan/job-tailor/internal/keywords"
	"github.com/jonathan/job-tailor/internal/ranking"
	"github.com/jonathan/job-tailor/internal/types"
)

const (
	// DefaultPerGroupCap bounds how many bullets one experience contributes to the candidate pool
	DefaultPerGroupCap = 3
	// DefaultGlobalCap bounds the total number of selected bullets
	DefaultGlobalCap = 12
	// fallbackPerGroup is how many leading bullets each experience contributes
	// when nothing scores positively
	fallbackPerGroup = 2
)

// candidate is one bullet positioned by its profile order, scored once and
// reused across both phases (both phases share the same keyword set, so the
// scores stay comparable).
type candidate struct {
	expIndex    int
	bulletIndex int
	score       int
}

// Select picks a bounded, deduplicated, diversity-respecting subset of the
// profile's bullets for one posting's keyword set.
//
// Phase 1 sorts each experience's bullets by descending score (stable, so the
// original display order breaks ties) and keeps at most perGroupCap per
// experience, zero scores included. Every non-empty experience therefore
// reaches the candidate pool before global filtering.
//
// Phase 2 sorts the pooled candidates by descending score (profile order
// breaks ties) and keeps a candidate only if its score is strictly positive
// and its (company, text) identity is unseen, stopping at globalCap.
//
// If phase 2 keeps nothing, the fallback ignores scores and takes the first
// two bullets of each experience in profile order, up to globalCap.
//
// An empty profile yields an empty result. Caps are trusted as-is: a cap of
// zero legitimately suppresses all output.
func Select(profile *types.Profile, kws keywords.Set, perGroupCap, globalCap int) []types.SelectedBullet {
	pool := buildCandidatePool(profile, kws, perGroupCap)

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})

	selected := make([]types.SelectedBullet, 0, globalCap)
	seen := make(map[string]struct{})
	for _, c := range pool {
		if len(selected) >= globalCap {
			break
		}
		if c.score <= 0 {
			// Sorted descending, so nothing positive remains
			break
		}
		exp := &profile.Experiences[c.expIndex]
		key := identityKey(exp.Company, exp.Bullets[c.bulletIndex].Text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, selectedBullet(exp, c.bulletIndex, c.score))
	}

	if len(selected) == 0 {
		return fallbackSelection(profile, globalCap)
	}

	return selected
}

// buildCandidatePool runs the per-experience phase: score every bullet, sort
// each experience's bullets by descending score with display order as the
// tie-break, and keep at most perGroupCap per experience.
func buildCandidatePool(profile *types.Profile, kws keywords.Set, perGroupCap int) []candidate {
	var pool []candidate

	for ei := range profile.Experiences {
		exp := &profile.Experiences[ei]

		group := make([]candidate, 0, len(exp.Bullets))
		for bi := range exp.Bullets {
			group = append(group, candidate{
				expIndex:    ei,
				bulletIndex: bi,
				score:       ranking.ScoreBullet(exp.Bullets[bi], kws),
			})
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].score > group[j].score
		})

		if len(group) > perGroupCap {
			group = group[:perGroupCap]
		}
		pool = append(pool, group...)
	}

	return pool
}

// fallbackSelection returns the first fallbackPerGroup bullets of each
// experience in profile order, up to globalCap. It guarantees the renderer a
// representative slice even when the posting shares no vocabulary with the
// profile.
func fallbackSelection(profile *types.Profile, globalCap int) []types.SelectedBullet {
	selected := make([]types.SelectedBullet, 0, globalCap)

	for ei := range profile.Experiences {
		exp := &profile.Experiences[ei]
		for bi := range exp.Bullets {
			if bi >= fallbackPerGroup {
				break
			}
			if len(selected) >= globalCap {
				return selected
			}
			selected = append(selected, selectedBullet(exp, bi, 0))
		}
	}

	return selected
}

// identityKey builds the deduplication key for a bullet. Two bullets with
// identical text under different companies are distinct.
func identityKey(company, text string) string {
	return company + "\x00" + text
}

func selectedBullet(exp *types.Experience, bulletIndex, score int) types.SelectedBullet {
	return types.SelectedBullet{
		Company: exp.Company,
		Role:    exp.Role,
		Start:   exp.Start,
		End:     exp.End,
		Bullet:  exp.Bullets[bulletIndex],
		Score:   score,
	}
}
