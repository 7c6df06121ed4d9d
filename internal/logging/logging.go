// Package logging builds the application logger: logrus text output to
// stderr, mirrored into a size-rotated file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file defaults
const (
	FileName       = "site-cloner.log"
	DefaultMaxSize = 10 // megabytes
	DefaultBackups = 3
	DefaultMaxAge  = 28 // days
)

// ComponentField is the field every component entry is tagged with
const ComponentField = "component"

// Options configures New
type Options struct {
	// Level is a logrus level name; unknown names fall back to info
	Level string
	// Dir holds the rotated log file; empty disables file output
	Dir string
	// Console is the interactive output; nil means stderr
	Console io.Writer

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a logger and returns a close func for its file output
func New(opts Options) (*logrus.Logger, func() error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	if opts.Dir == "" {
		logger.SetOutput(console)
		return logger, func() error { return nil }
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, FileName),
		MaxSize:    orDefault(opts.MaxSizeMB, DefaultMaxSize),
		MaxBackups: orDefault(opts.MaxBackups, DefaultBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, DefaultMaxAge),
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(console, rotator))

	return logger, rotator.Close
}

// Component returns an entry tagged with the component name
func Component(logger logrus.FieldLogger, name string) *logrus.Entry {
	return logger.WithField(ComponentField, name)
}

// SetLevel changes the level at runtime; an unknown name is ignored
func SetLevel(logger *logrus.Logger, name string) bool {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return false
	}
	logger.SetLevel(level)
	return true
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
