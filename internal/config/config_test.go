package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kotoba", FileName)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", again.LogLevel)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := `deck = "/decks/n5.json"
log_level = "debug"

[checker]
tolerance_bonus = 1
disabled_plugins = ["check-n", "check-long-dash"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/decks/n5.json", cfg.Deck)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Checker.ToleranceBonus)
	assert.Equal(t, []string{"check-n", "check-long-dash"}, cfg.Checker.DisabledPlugins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`deck = "d.json"`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("deck = "), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	want := Config{
		Deck:     "deck.json",
		DB:       "answers.db",
		LogLevel: "warn",
		Checker:  CheckerConfig{ToleranceBonus: 2, DisabledPlugins: []string{"check-kanji"}},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("KOTOBA_DECK", "env.json")
	t.Setenv("KOTOBA_DB", "env.db")
	t.Setenv("KOTOBA_LOG_LEVEL", "trace")

	cfg := Config{Deck: "file.json", LogLevel: "info"}.ApplyEnv()
	assert.Equal(t, "env.json", cfg.Deck)
	assert.Equal(t, "env.db", cfg.DB)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"negative bonus", func(c *Config) { c.Checker.ToleranceBonus = -1 }, true},
		{"huge bonus", func(c *Config) { c.Checker.ToleranceBonus = 10 }, true},
		{"unknown plugin", func(c *Config) { c.Checker.DisabledPlugins = []string{"check-everything"} }, true},
		{"known plugin", func(c *Config) { c.Checker.DisabledPlugins = []string{"check-transliterated"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnswerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Checker.DisabledPlugins = []string{"check-n"}
	cfg.Checker.ToleranceBonus = 1

	ac := cfg.AnswerConfig()
	assert.Len(t, ac.Plugins, 9)
	for _, p := range ac.Plugins {
		assert.NotEqual(t, "check-n", p.Name())
	}
	assert.Equal(t, 3, ac.Tolerance(7))
	assert.Equal(t, 0, ac.Tolerance(2))
}
