// Package logging builds the structured loggers used by the CLI, the TUI and
// the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/echoes/internal/config"
)

// Options selects where log lines go.
type Options struct {
	Prefix string
	// Console additionally writes to this stream. Nil when the TUI owns the terminal.
	Console io.Writer
	// DefaultFile is used when the config names no file. Empty means no file.
	DefaultFile string
}

// Logger is a configured logger plus the file it writes to, if any.
type Logger struct {
	*log.Logger
	file *lumberjack.Logger
}

// New builds a logger from the log section of the config.
func New(cfg config.LogConfig, opts Options) (*Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var writers []io.Writer
	if opts.Console != nil {
		writers = append(writers, opts.Console)
	}

	path := cfg.File
	if path == "" {
		path = opts.DefaultFile
	}

	var file *lumberjack.Logger
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		writers = append(writers, file)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return &Logger{Logger: logger, file: file}, nil
}

// Discard returns a logger that writes nowhere.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// Path returns the log file path, or empty when not writing to a file.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Filename
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
