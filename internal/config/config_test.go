package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 6.0, cfg.StandardStaleHours)
	assert.Equal(t, 3.0, cfg.InterviewStaleHours)
	assert.Equal(t, 24.0, cfg.DraftExpireHours)
	assert.Equal(t, 2, cfg.ProblemsPerTopic)
	assert.True(t, cfg.NotifyEnabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CODEDRILL_PROBLEMS_PER_TOPIC", "5")
	t.Setenv("CODEDRILL_NOTIFY", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.ProblemsPerTopic)
	assert.False(t, cfg.NotifyEnabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codedrill.yaml")
	data := []byte("problems_per_topic: 3\nstandard_stale_hours: 12\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.ProblemsPerTopic)
	assert.Equal(t, 12.0, cfg.StandardStaleHours)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.ProblemsPerTopic)
}
