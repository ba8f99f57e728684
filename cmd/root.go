package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/answer"
	"github.com/abhisek/kotoba/internal/config"
	"github.com/abhisek/kotoba/internal/logging"
	"github.com/abhisek/kotoba/internal/store"
	"github.com/abhisek/kotoba/internal/subject"
)

// cfg is loaded before any subcommand runs.
var cfg config.Config

// skipConfigAnnotation marks commands that run without a config file or
// logging setup.
const skipConfigAnnotation = "kotoba.skip-config"

// rootCmd loads the config before any subcommand runs, unless the
// subcommand carries skipConfigAnnotation.
var rootCmd = &cobra.Command{
	Use:          "kotoba",
	Short:        "Check Japanese vocabulary and kanji answers",
	Long:         "Kotoba checks meaning and reading answers for Japanese vocabulary and kanji decks, with hints for common typing mistakes.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/kotoba/config.toml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOTOBA_DB env var)")
	rootCmd.PersistentFlags().String("deck", "", "Path to JSON deck file (overrides KOTOBA_DECK env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Also print logs to stderr")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file, applies env vars and flags in that
// order of increasing priority, and sets up logging.
func loadConfig(cmd *cobra.Command) error {
	if cmd.Annotations[skipConfigAnnotation] != "" {
		return nil
	}
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	c = c.ApplyEnv()

	if d, _ := cmd.Flags().GetString("deck"); d != "" {
		c.Deck = d
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		c.DB = p
	}
	if err := c.Validate(); err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if err := logging.Setup(c.LogLevel, verbose); err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	cfg = c
	log.Debug().Str("config", path).Str("deck", cfg.Deck).Msg("config loaded")
	return nil
}

// resolveDBPath returns the database path from --db or the config file
// (highest priority), then KOTOBA_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func openStore() (*store.Store, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func loadDeck() (*subject.Deck, error) {
	if cfg.Deck == "" {
		return nil, fmt.Errorf("no deck configured: pass --deck, set KOTOBA_DECK or add deck to the config file")
	}
	deck, err := subject.LoadDeck(cfg.Deck)
	if err != nil {
		return nil, err
	}
	log.Info().Str("deck", cfg.Deck).Int("subjects", deck.Len()).Msg("deck loaded")
	return deck, nil
}

func newChecker() *answer.Checker {
	return answer.New(cfg.AnswerConfig())
}

// warnDataProblems logs deck problems that disable some hints.
func warnDataProblems(s subject.Subject) {
	for _, w := range subject.Warnings(s) {
		log.Warn().Int("subject", s.Base().ID).Msg(w)
	}
}
