package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-tailor/internal/types"
)

func TestPrintKeywords_ShowsCountAndTruncates(t *testing.T) {
	var out strings.Builder
	p := NewPrinter(&out)

	kws := make([]string, 0, 20)
	for _, w := range strings.Fields("a b c d e f g h i j k l m n o p q r s t") {
		kws = append(kws, w)
	}
	p.PrintKeywords("j1", kws)

	assert.Contains(t, out.String(), "Keywords for posting j1")
	assert.Contains(t, out.String(), "count: 20")
	assert.Contains(t, out.String(), "and 5 more")
}

func TestPrintSelection_ListsScoresAndCompanies(t *testing.T) {
	var out strings.Builder
	p := NewPrinter(&out)

	p.PrintSelection([]types.SelectedBullet{
		{Company: "Acme", Score: 4, Bullet: types.Bullet{Text: "Cut latency"}},
	})

	assert.Contains(t, out.String(), "Selection (1 bullets)")
	assert.Contains(t, out.String(), "[4] Acme: Cut latency")
}

func TestPrintSelection_Empty(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintSelection(nil)

	assert.Contains(t, out.String(), "no bullets selected")
}
