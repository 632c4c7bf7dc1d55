package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-tailor/internal/types"
)

func TestValidateSelectionArtifact_ValidDocument(t *testing.T) {
	artifact := types.SelectionArtifact{
		RunID:        "run-123",
		PostingID:    "j1",
		KeywordCount: 42,
		Selected: []types.SelectedBullet{
			{
				Company: "Acme",
				Role:    "Engineer",
				Start:   "2021",
				End:     "2024",
				Bullet:  types.Bullet{Text: "Cut latency by 40%", Tags: []string{"performance"}},
				Score:   4,
			},
		},
	}
	content, err := json.Marshal(artifact)
	require.NoError(t, err)

	assert.NoError(t, ValidateSelectionArtifact(string(content)))
}

func TestValidateSelectionArtifact_EmptySelectionIsValid(t *testing.T) {
	artifact := types.SelectionArtifact{
		RunID:        "run-123",
		PostingID:    "j1",
		KeywordCount: 0,
		Selected:     []types.SelectedBullet{},
	}
	content, err := json.Marshal(artifact)
	require.NoError(t, err)

	assert.NoError(t, ValidateSelectionArtifact(string(content)))
}

func TestValidateSelectionArtifact_MissingRequiredFields(t *testing.T) {
	err := ValidateSelectionArtifact("{}")

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateSelectionArtifact_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateSelectionArtifact("{not json"))
}
