package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadqual/dedupe"
)

// chtemp runs the test from an empty directory so a stray config.yaml
// cannot leak into Load.
func chtemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	chtemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	def := dedupe.DefaultConfig()
	assert.Equal(t, def.NameSimilarityThreshold, cfg.Dedupe.NameSimilarityThreshold)
	assert.Equal(t, def.AddressSimilarityThreshold, cfg.Dedupe.AddressSimilarityThreshold)
	assert.Equal(t, def.MinCompanyNameLength, cfg.Dedupe.MinCompanyNameLength)
	assert.Equal(t, 5, cfg.Pipeline.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	chtemp(t)

	yaml := `
dedupe:
  name_similarity_threshold: 0.92
pipeline:
  workers: 3
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.92, cfg.Dedupe.NameSimilarityThreshold)
	assert.Equal(t, 3, cfg.Pipeline.Workers)
	// Untouched keys keep their defaults.
	assert.Equal(t, dedupe.DefaultConfig().AddressSimilarityThreshold, cfg.Dedupe.AddressSimilarityThreshold)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chtemp(t)

	t.Setenv("LEADQUAL_PIPELINE_WORKERS", "9")
	t.Setenv("LEADQUAL_DEDUPE_NAME_SIMILARITY_THRESHOLD", "0.9")
	t.Setenv("LEADQUAL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Pipeline.Workers)
	assert.Equal(t, 0.9, cfg.Dedupe.NameSimilarityThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "verbose", Format: "json"})
	assert.Error(t, err)
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	assert.NoError(t, err)
}
