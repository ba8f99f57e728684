package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/kotoba/internal/answer"
)

// FileName is the config file name inside the kotoba config directory.
const FileName = "config.toml"

// Config holds the user's settings.
type Config struct {
	// Deck is the JSON deck file practised and checked against.
	Deck string `toml:"deck"`

	// DB overrides the answer log location. Empty means the XDG default.
	DB string `toml:"db,omitempty"`

	// LogLevel is a zerolog level name. Default: "info".
	LogLevel string `toml:"log_level" validate:"oneof=trace debug info warn error disabled"`

	Checker CheckerConfig `toml:"checker"`
}

// CheckerConfig tunes the answer checker.
type CheckerConfig struct {
	// ToleranceBonus forgives this many extra typos in meanings longer than
	// two characters.
	ToleranceBonus int `toml:"tolerance_bonus" validate:"gte=0,lte=3"`

	// DisabledPlugins lists plugins by name, e.g. "check-n".
	DisabledPlugins []string `toml:"disabled_plugins"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/kotoba/config.toml, creating the
// directory if needed.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join("kotoba", FileName))
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return p, nil
}

// Load reads the config at path. If the file doesn't exist, it writes one
// with default values and returns the defaults.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Info().Str("path", path).Msg("creating default config")
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return Config{}, fmt.Errorf("create default config: %w", err)
		}
		return cfg, nil
	}

	log.Debug().Str("path", path).Msg("loading config")
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user or the XDG config dir
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from KOTOBA_* environment variables.
func (c Config) ApplyEnv() Config {
	if d := os.Getenv("KOTOBA_DECK"); d != "" {
		c.Deck = d
	}
	if p := os.Getenv("KOTOBA_DB"); p != "" {
		c.DB = p
	}
	if l := os.Getenv("KOTOBA_LOG_LEVEL"); l != "" {
		c.LogLevel = l
	}
	return c
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and that every disabled plugin exists.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	known := answer.PluginNames()
	for _, name := range c.Checker.DisabledPlugins {
		if !slices.Contains(known, name) {
			return fmt.Errorf("unknown plugin %q in checker.disabled_plugins", name)
		}
	}
	return nil
}

// AnswerConfig builds the checker configuration.
func (c Config) AnswerConfig() answer.Config {
	cfg := answer.DefaultConfig().Without(c.Checker.DisabledPlugins...)
	cfg.Tolerance = answer.WithBonus(answer.DefaultTolerance, c.Checker.ToleranceBonus)
	return cfg
}
