package config_test

import (
	"testing"

	"lang-atlas/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data/raw", cfg.Data.RawDir)
	assert.Equal(t, "data/derived", cfg.Data.DerivedDir)
	assert.Equal(t, "./pldb", cfg.Data.PLDBDir)
	assert.Equal(t, 3, cfg.Fetch.Retries)
	assert.Equal(t, 0.94, cfg.Merge.FuzzyThreshold)
	assert.Equal(t, 0.92, cfg.Merge.MatchCutoff)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "lang-atlas", cfg.Storage.Bucket)
	assert.Equal(t, "derived/", cfg.Storage.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DATA_PLDB_DIR", "/srv/pldb")
	t.Setenv("MERGE_FUZZY_THRESHOLD", "0.9")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/pldb", cfg.Data.PLDBDir)
	assert.Equal(t, 0.9, cfg.Merge.FuzzyThreshold)
	assert.Equal(t, "9090", cfg.Server.Port)
}
