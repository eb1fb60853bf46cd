// Package logger builds the structured logger of the plainmap command.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"

	"plain-mapper/internal/config"
)

// Logger wraps logrus.Logger with helpers for conversion context.
type Logger struct {
	*logrus.Logger
}

// New creates a logger writing to w with the configured level and format.
// An unknown level falls back to info.
func New(cfg config.LoggingConfig, w io.Writer) *Logger {
	log := logrus.New()
	log.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Logger{Logger: log}
}

// WithType adds the converted type to log entries.
func (l *Logger) WithType(name string) *logrus.Entry {
	return l.WithField("type", name)
}

// WithRules adds the selected rules to log entries.
func (l *Logger) WithRules(rules []string) *logrus.Entry {
	return l.WithField("rules", rules)
}
