// Package logging configures the global zerolog logger for the different
// run modes. The daemons replace the original deployment's syslog calls
// with a rotating file plus, outside TUI mode, a console writer.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes.
type Options struct {
	Debug   bool
	File    string    // rotating log file; empty disables file logging
	Console bool      // human-readable output on stderr; off in TUI mode
	Extra   io.Writer // additional sink, used to mirror logs into the TUI
}

// Setup installs the global logger. Safe to call once at process start.
func Setup(opts Options) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	var writers []io.Writer
	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if opts.Extra != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: opts.Extra, NoColor: true})
	}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    1, // megabytes
			MaxBackups: 2,
		})
	}
	if len(writers) == 0 {
		// Nowhere to write; drop everything rather than corrupt a TUI.
		log.Logger = zerolog.Nop()
		return
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
}
