package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "jobs.csv", cfg.Jobs)
	assert.Equal(t, "profile.yaml", cfg.Profile)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, 3, cfg.PerGroupCap)
	assert.Equal(t, 12, cfg.GlobalCap)
	assert.Equal(t, 60, cfg.SelectTopK)
	assert.Equal(t, 10, cfg.LetterTopK)
}

func TestLoad_FromFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job-tailor.yaml")
	content := "jobs: /data/postings.csv\nper-group-cap: 2\nglobal-cap: 8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/postings.csv", cfg.Jobs)
	assert.Equal(t, 2, cfg.PerGroupCap)
	assert.Equal(t, 8, cfg.GlobalCap)
	// Untouched keys keep their defaults
	assert.Equal(t, 60, cfg.SelectTopK)
}

func TestLoad_MissingExplicitFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoad_NonPositiveCapRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job-tailor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("per-group-cap: 0\n"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "per-group-cap")
}

func TestValidate_ChecksEveryLimit(t *testing.T) {
	valid := Config{PerGroupCap: 3, GlobalCap: 12, SelectTopK: 60, LetterTopK: 10}
	assert.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*Config){
		"per-group-cap": func(c *Config) { c.PerGroupCap = 0 },
		"global-cap":    func(c *Config) { c.GlobalCap = -1 },
		"select-top-k":  func(c *Config) { c.SelectTopK = 0 },
		"letter-top-k":  func(c *Config) { c.LetterTopK = 0 },
	} {
		cfg := valid
		mutate(&cfg)
		err := cfg.Validate()
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), name)
	}
}
