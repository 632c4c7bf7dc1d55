package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-tailor/internal/types"
)

func sampleProfile() *types.Profile {
	return &types.Profile{
		Name:      "Jordan Smith",
		Contact:   "jordan@example.com",
		Summary:   "Backend engineer.",
		Skills:    []string{"Go", "SQL"},
		Education: []string{"BS Computer Science"},
		Projects:  []string{"CSV toolkit"},
	}
}

func sampleSelection() []types.SelectedBullet {
	return []types.SelectedBullet{
		{Company: "Acme", Role: "Engineer", Start: "2021", End: "2024", Bullet: types.Bullet{Text: "Cut latency by 40%"}, Score: 4},
		{Company: "Beta", Role: "Analyst", Start: "2019", End: "2021", Bullet: types.Bullet{Text: "Automated reporting"}, Score: 2},
		{Company: "Acme", Role: "Engineer", Start: "2021", End: "2024", Bullet: types.Bullet{Text: "Owned inventory sync"}, Score: 1},
	}
}

func TestRenderResume_GroupsBulletsUnderExperienceHeaders(t *testing.T) {
	out, err := RenderResume(sampleProfile(), sampleSelection())

	require.NoError(t, err)
	acmeIdx := strings.Index(out, "### Engineer, Acme (2021 - 2024)")
	betaIdx := strings.Index(out, "### Analyst, Beta (2019 - 2021)")
	require.GreaterOrEqual(t, acmeIdx, 0)
	require.GreaterOrEqual(t, betaIdx, 0)

	// Acme was delivered first, so its header comes first; both Acme bullets sit under one header
	assert.Less(t, acmeIdx, betaIdx)
	assert.Equal(t, 1, strings.Count(out, "### Engineer, Acme"))
	assert.Contains(t, out, "- Cut latency by 40%")
	assert.Contains(t, out, "- Owned inventory sync")
	assert.Contains(t, out, "- Automated reporting")
}

func TestRenderResume_IncludesProfileMetadata(t *testing.T) {
	out, err := RenderResume(sampleProfile(), sampleSelection())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Jordan Smith"))
	assert.Contains(t, out, "jordan@example.com")
	assert.Contains(t, out, "Backend engineer.")
	assert.Contains(t, out, "Go, SQL")
	assert.Contains(t, out, "- BS Computer Science")
	assert.Contains(t, out, "- CSV toolkit")
}

func TestRenderResume_OmitsEmptySections(t *testing.T) {
	p := &types.Profile{Name: "Jordan Smith"}

	out, err := RenderResume(p, nil)

	require.NoError(t, err)
	assert.NotContains(t, out, "## Summary")
	assert.NotContains(t, out, "## Skills")
	assert.NotContains(t, out, "## Education")
	assert.NotContains(t, out, "## Projects")
	assert.Contains(t, out, "## Experience")
}

func TestRenderCoverLetter_InterpolatesKeywordsAndPosting(t *testing.T) {
	posting := types.Posting{Title: "Store Manager", Company: "Acme Retail"}

	out, err := RenderCoverLetter(sampleProfile(), posting, []string{"operations", "retail", "leadership"})

	require.NoError(t, err)
	assert.Contains(t, out, "Dear Acme Retail Hiring Team,")
	assert.Contains(t, out, "Store Manager position")
	assert.Contains(t, out, "operations, retail, leadership")
	assert.Contains(t, out, "Jordan Smith")
}

func TestRenderCoverLetter_NoKeywordsUsesFallbackPhrase(t *testing.T) {
	posting := types.Posting{Title: "Store Manager", Company: "Acme Retail"}

	out, err := RenderCoverLetter(sampleProfile(), posting, nil)

	require.NoError(t, err)
	assert.Contains(t, out, "the areas highlighted in your posting")
}

func TestExportPDF_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")

	err := ExportPDF(sampleProfile(), sampleSelection(), path)

	require.NoError(t, err)
	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(0))
}
