// Package logging provides the shared logr-based logger for the correction
// engine. The engine logs through the logr API with a zap backend; levels
// above 0 follow the DEBUG/TRACE verbosity convention, so callers write
// Log.V(logging.DEBUG).Info(...) for diagnostics that should stay quiet in
// production.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logr's V().
const (
	DEBUG = 1
	TRACE = 2
)

// Log is the package-level logger used throughout the engine. It discards
// output until a binary or test installs a real logger via SetLogger,
// NewLogger, or NewTestLogger, keeping the library silent by default.
var Log = logr.Discard()

// SetLogger installs l as the package-level logger.
func SetLogger(l logr.Logger) {
	Log = l
}

// NewLogger builds a zap-backed logr.Logger at the given verbosity and
// installs it as the package logger. Verbosity 0 logs Info and above;
// DEBUG and TRACE enable the corresponding V() levels.
func NewLogger(verbosity int, development bool) logr.Logger {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	z, err := cfg.Build()
	if err != nil {
		// zap.Config.Build only fails on invalid sink configuration, which the
		// presets above never produce.
		return logr.Discard()
	}
	l := zapr.NewLogger(z)
	Log = l
	return l
}

// NewTestLogger installs a development logger with TRACE verbosity, suitable
// for test suites.
func NewTestLogger() logr.Logger {
	return NewLogger(TRACE, true)
}
