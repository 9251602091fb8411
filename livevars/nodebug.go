//go:build !debug
// +build !debug

package livevars

import (
	"log"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Count3x/data-flow-analyzer-hengshuo-main/internal/logging"
)

// newLogger returns a new logger with default options.
func newLogger() *logging.Logger {
	color.NoColor = true
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return logging.New(l)
}

// newFileLogger returns a new debug level logger which also writes the log
// output to files.
func newFileLogger(files ...string) *logging.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = appendPaths(cfg.OutputPaths, files...)
	l, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot create new logger:", err)
	}
	return logging.New(l)
}
