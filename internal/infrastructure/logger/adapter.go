package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"alfred/internal/application/port/output"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

type Config struct {
	Level string
	// File задаёт путь к JSON-логу, пустая строка отключает запись в файл.
	File       string
	MaxSizeMB  int
	MaxBackups int
	Console    bool
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		File:       filepath.Join("log", "alfred.log"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		Console:    true,
	}
}

type LoggerAdapter struct {
	sugar *zap.SugaredLogger
	sync  func() error
}

func NewLoggerAdapter(cfg Config) (*LoggerAdapter, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var cores []zapcore.Core

	if cfg.Console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		))
	}

	return NewFromCore(zapcore.NewTee(cores...)), nil
}

// NewFromCore wraps an arbitrary zap core, tests pass an observer core here.
func NewFromCore(core zapcore.Core) *LoggerAdapter {
	l := zap.New(core)
	return &LoggerAdapter{
		sugar: l.Sugar(),
		sync:  l.Sync,
	}
}

func NewNop() *LoggerAdapter {
	return NewFromCore(zapcore.NewNopCore())
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return &LoggerAdapter{
		sugar: l.sugar.With(key, value),
		sync:  l.sync,
	}
}

func (l *LoggerAdapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &LoggerAdapter{
		sugar: l.sugar.With(args...),
		sync:  l.sync,
	}
}

// Close flushes buffered entries. Sync errors on terminals are ignored.
func (l *LoggerAdapter) Close() error {
	if err := l.sync(); err != nil && !isTerminalSyncError(err) {
		return err
	}
	return nil
}

func isTerminalSyncError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path == "/dev/stderr" || pathErr.Path == "/dev/stdout"
	}
	return false
}
