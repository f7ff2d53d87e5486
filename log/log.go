// Package log sets up the zap loggers used across the module.
package log

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// where logs go by default.
var logWriter io.Writer = os.Stdout

var jsonLog atomic.Bool

// JSONLog turns JSON format on or off for loggers created afterwards.
func JSONLog(b bool) {
	jsonLog.Store(b)
}

func encoder() zapcore.Encoder {
	if jsonLog.Load() {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
}

// NewNop creates silent logger.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// NewWithLevel creates a logger with a fixed level and with a set of (optional) hooks.
func NewWithLevel(module string, level zap.AtomicLevel, hooks ...func(zapcore.Entry) error) *zap.Logger {
	return newWithWriter(module, level, logWriter, hooks...)
}

func newWithWriter(module string, level zap.AtomicLevel, w io.Writer, hooks ...func(zapcore.Entry) error) *zap.Logger {
	core := zapcore.NewCore(encoder(), zapcore.AddSync(w), level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(module)
}

// ParseLevel parses a textual level ("debug", "INFO", ...) into an atomic level.
func ParseLevel(lvl string) (zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(lvl)
	if err != nil {
		return zap.AtomicLevel{}, ErrBadFlags(err)
	}
	return level, nil
}
