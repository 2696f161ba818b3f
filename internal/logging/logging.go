// Package logging builds the logrus logger shared by the CLI commands.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to w at the given level. format is "text" or
// "json"; anything else falls back to text. An invalid level falls back to info.
func New(level, format string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if lvl, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("Invalid log level, using INFO")
	}
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
