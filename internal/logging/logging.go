package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file name inside the kotoba state directory.
const FileName = "kotoba.log"

// DefaultPath returns $XDG_STATE_HOME/kotoba/kotoba.log.
func DefaultPath() (string, error) {
	p, err := xdg.StateFile(filepath.Join("kotoba", FileName))
	if err != nil {
		return "", fmt.Errorf("resolve state dir: %w", err)
	}
	return p, nil
}

// Setup configures the global logger to write to the default log file.
// With verbose set, log lines are also printed to stderr.
func Setup(level string, verbose bool) error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	var extra []io.Writer
	if verbose {
		extra = append(extra, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	return SetupWithPath(path, level, extra...)
}

// SetupWithPath configures the global logger to write to a rotated file
// at path and to any extra writers.
func SetupWithPath(path, level string, extra ...io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	writers := []io.Writer{&lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 2,
	}}
	writers = append(writers, extra...)

	log.Logger = log.Output(io.MultiWriter(writers...)).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}
