// SPDX-License-Identifier: MIT
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the global logger
type Options struct {
	Level      string // trace, debug, info, warn, error
	Format     string // console or json
	File       string // optional path, rotated by size
	MaxSizeMB  int
	MaxBackups int
	Compress   bool
}

// Setup initializes the global zerolog logger. Console or JSON output always
// goes to stderr; when a file is configured the same events are also written
// there through a rotating writer.
func Setup(opts Options) error {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stderr
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	if opts.File != "" {
		// Log directory is owner only
		if err := os.MkdirAll(filepath.Dir(opts.File), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   opts.Compress,
		}
		out = io.MultiWriter(out, fileWriter)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Str("invalid_level", opts.Level).Msg("Invalid log level, using info")
	}
	log.Debug().Str("level", level.String()).Str("file", opts.File).Msg("Logging initialized")
	return nil
}

// Component returns a child of the global logger tagged with a component name
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}
