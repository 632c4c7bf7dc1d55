package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_RanksByDescendingFrequency(t *testing.T) {
	text := "apple banana apple cherry banana apple"

	result := Extract(text, 3)

	assert.Equal(t, []string{"apple", "banana", "cherry"}, result)
}

func TestExtract_TruncatesToTopK(t *testing.T) {
	text := "apple banana apple cherry banana apple"

	result := Extract(text, 2)

	assert.Equal(t, []string{"apple", "banana"}, result)
}

func TestExtract_TieBreaksOnFirstOccurrence(t *testing.T) {
	// All tokens occur once; ties must resolve in input order
	result := Extract("cherry banana apple", 3)

	assert.Equal(t, []string{"cherry", "banana", "apple"}, result)
}

func TestExtract_FewerDistinctThanTopK(t *testing.T) {
	result := Extract("apple banana", 10)

	assert.Equal(t, []string{"apple", "banana"}, result)
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Empty(t, Extract("", 10))
}

func TestExtract_ZeroTopK(t *testing.T) {
	assert.Empty(t, Extract("apple banana", 0))
}

func TestExtract_Deterministic(t *testing.T) {
	text := "drive store sales, manage store operations, retail leadership, operations excel"

	first := Extract(text, 60)
	second := Extract(text, 60)

	assert.Equal(t, first, second)
}

func TestExtract_IgnoresStopwordsAndPunctuation(t *testing.T) {
	result := Extract("the team, the team!", 10)

	assert.Equal(t, []string{"team"}, result)
}

func TestNewSet_Contains(t *testing.T) {
	s := NewSet([]string{"operations", "retail"})

	assert.True(t, s.Contains("operations"))
	assert.True(t, s.Contains("retail"))
	assert.False(t, s.Contains("logistics"))
}

func TestNewSet_Empty(t *testing.T) {
	s := NewSet(nil)

	assert.False(t, s.Contains("anything"))
}
