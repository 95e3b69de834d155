// Package log provides the logging abstraction used across the core: a
// small interface the rest of the tree depends on, backed by a concrete
// implementation so call sites never import the logging library directly.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface consumed by the rest of the core.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type logrusLogger struct {
	l *logrus.Logger
}

// New returns a Logger backed by logrus, formatted as flat, timestamp-free
// text.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logrusLogger{l: l}
}

func (g *logrusLogger) Infof(format string, args ...interface{}) {
	g.l.Infof(format, args...)
}

func (g *logrusLogger) Errorf(format string, args ...interface{}) {
	g.l.Errorf(format, args...)
}

func (g *logrusLogger) Debugf(format string, args ...interface{}) {
	g.l.Debugf(format, args...)
}

func (g *logrusLogger) Warnf(format string, args ...interface{}) {
	g.l.Warnf(format, args...)
}
