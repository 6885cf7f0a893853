// Package logger builds the zap logger shared by the converter and the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var pool = buffer.NewPool()

// Options configures where log lines go.
type Options struct {
	// File is truncated on every run. Empty disables the file sink.
	File  string
	Level string
	// Console receives the same lines as File. Nil disables it.
	Console io.Writer
}

// New returns a logger writing "name:LEVEL - message" lines to the console
// and the log file. The returned close func syncs and releases the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var cores []zapcore.Core
	closeFn := func() error { return nil }

	if opts.Console != nil {
		cores = append(cores, zapcore.NewCore(NewLineEncoder(), zapcore.AddSync(opts.Console), level))
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(NewLineEncoder(), zapcore.Lock(f), level))
		closeFn = func() error {
			_ = f.Sync()
			return f.Close()
		}
	}

	return zap.New(zapcore.NewTee(cores...)), closeFn, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// LevelName renders a level the way the log file spells it.
func LevelName(l zapcore.Level) string {
	if l == zapcore.WarnLevel {
		return "WARNING"
	}
	return l.CapitalString()
}

// lineEncoder renders entries as "name:LEVEL - message" followed by any
// fields as key=value. Context fields added with With are kept by the
// embedded map encoder.
type lineEncoder struct {
	*zapcore.MapObjectEncoder
}

// NewLineEncoder returns the encoder used for both sinks.
func NewLineEncoder() zapcore.Encoder {
	return &lineEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (e *lineEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return &lineEncoder{MapObjectEncoder: clone}
}

func (e *lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := pool.Get()
	line.AppendString(ent.LoggerName)
	line.AppendByte(':')
	line.AppendString(LevelName(ent.Level))
	line.AppendString(" - ")
	line.AppendString(ent.Message)

	all := e.Clone().(*lineEncoder)
	for _, f := range fields {
		f.AddTo(all.MapObjectEncoder)
	}

	keys := make([]string, 0, len(all.Fields))
	for k := range all.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line.AppendByte(' ')
		line.AppendString(k)
		line.AppendByte('=')
		line.AppendString(fmt.Sprint(all.Fields[k]))
	}

	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}
