// Package flog is the process-wide leveled logger.
package flog

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the global logger output and verbosity.
type Config struct {
	Level      string // debug, info, warn or error
	File       string // log file path; empty logs to stderr
	MaxSizeMB  int    // rotate after this many megabytes
	MaxBackups int    // rotated files to keep
}

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	sugar = newLogger(zapcore.Lock(os.Stderr))
}

func newLogger(w zapcore.WriteSyncer) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), w, level)
	return zap.New(core).Sugar()
}

// Setup reconfigures the global logger. With a file configured, output goes
// through a size-rotated writer instead of stderr.
func Setup(cfg Config) error {
	if err := SetLevel(cfg.Level); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if cfg.File == "" {
		sugar = newLogger(zapcore.Lock(os.Stderr))
		return nil
	}
	sugar = newLogger(zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}))
	return nil
}

// SetLevel changes the minimum level without touching the output.
func SetLevel(lvl string) error {
	if lvl == "" {
		lvl = "info"
	}
	parsed, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("invalid log level %q", lvl)
	}
	level.SetLevel(parsed)
	return nil
}

func Debugf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Errorf(format, args...)
}
