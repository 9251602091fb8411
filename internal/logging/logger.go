// Package logging holds the module-tagged zap logger shared by the analysis
// packages.
package logging

import (
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Logger encapsulates a Logger and module which it belongs to.
// Use this through SetLogger() of the analysers.
type Logger struct {
	*zap.SugaredLogger
	module string
}

// LogSetter is implemented by the analysis stages which take a Logger from
// their driver.
type LogSetter interface {
	SetLogger(*Logger)
}

// New wraps a zap logger.
func New(l *zap.Logger) *Logger {
	return &Logger{SugaredLogger: l.Sugar()}
}

// Nop returns a Logger which discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Module returns (stylised) module name.
func (l *Logger) Module() string {
	return l.module
}

// For returns a copy of l tagged with module, coloured with c.
func (l *Logger) For(module string, c color.Attribute) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger,
		module:        color.New(c).Sprint(module),
	}
}
