// Package logging builds the structured loggers shared by the commands.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w with the given prefix. Unknown or empty
// level strings fall back to info.
func New(prefix, level string, w io.Writer) *log.Logger {
	logger := log.New(w)
	logger.SetPrefix(prefix)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps debug/info/warn/error to a level, defaulting to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SetLevel changes the level of an existing logger from a string.
func SetLevel(logger *log.Logger, level string) {
	logger.SetLevel(ParseLevel(level))
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
