package common

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug  atomic.Bool
	logger atomic.Pointer[zap.SugaredLogger]
)

func init() {
	l, err := NewLogger("dev", "info")
	if err != nil {
		l = zap.NewNop()
	}
	SetLogger(l)
}

// NewLogger builds a zap logger. prod writes JSON, dev writes console output.
func NewLogger(env string, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "prod":
		cfg = zap.NewProductionConfig()
	case "dev", "local", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", env)
	}

	if level != "" {
		var lv zapcore.Level
		if err := lv.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lv)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

func SetLogger(l *zap.Logger) {
	logger.Store(l.Sugar())
}

func SetDebug(on bool) {
	debug.Store(on)
}

func Sync() {
	_ = logger.Load().Sync()
}

func INFO(format string, args ...any) {
	logger.Load().Infof(format, args...)
}
func WARN(format string, args ...any) {
	logger.Load().Warnf(format, args...)
}
func FAIL(format string, args ...any) {
	logger.Load().Errorf(format, args...)
}

func DINFO(format string, args ...any) {
	if debug.Load() {
		logger.Load().Debugf(format, args...)
	}
}
func DWARN(format string, args ...any) {
	if debug.Load() {
		logger.Load().Warnf(format, args...)
	}
}
func DFAIL(format string, args ...any) {
	if debug.Load() {
		logger.Load().Errorf(format, args...)
	}
}
