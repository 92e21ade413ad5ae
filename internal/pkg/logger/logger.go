// Package logger builds the shared zap logger. Diagnostics go to stderr so
// stdout stays a clean single-line channel for the invoking shell to eval.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger and its level handle. The default level is
// Warn so a normal invocation prints nothing beyond the result; debug mode
// drops the level to Debug for verbose diagnostics.
func New(debug bool) (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		return nil, level, err
	}
	return log, level, nil
}
