package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	resetFlags(t)
	flagSession = ""

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, defaultSessionFile, cfg.Session)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "standard", cfg.ModelTier)
}

func TestLoadSettings_FlagsBeatConfigFile(t *testing.T) {
	resetFlags(t)

	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"provider": "gemini", "model_tier": "lite"}`), 0644))

	flagConfig = configPath
	flagProvider = "openai"

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider, "flag should win over config file")
	assert.Equal(t, "lite", cfg.ModelTier, "config file should win over defaults")
}

func TestLoadSettings_RejectsUnknownProvider(t *testing.T) {
	resetFlags(t)
	flagProvider = "llama"

	_, err := loadSettings()
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
