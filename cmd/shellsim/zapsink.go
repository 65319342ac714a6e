package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pixelshell-go/logx"
)

// newLogger builds a zap logger writing to path.
func newLogger(path, level string, json bool) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	enc := zap.NewDevelopmentEncoderConfig()
	encoding := "console"
	if json {
		enc = zap.NewProductionEncoderConfig()
		encoding = "json"
	}
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          encoding,
		EncoderConfig:     enc,
		OutputPaths:       []string{path},
		ErrorOutputPaths:  []string{path},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	return cfg.Build()
}

// logLevel maps a zap level onto the shell's levels.
func logLevel(l zapcore.Level) logx.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return logx.LevelDebug
	case l == zapcore.InfoLevel:
		return logx.LevelInfo
	case l == zapcore.WarnLevel:
		return logx.LevelWarn
	default:
		return logx.LevelError
	}
}

// zapSink forwards shell log records to zap with the component as a field.
type zapSink struct {
	l *zap.Logger
}

func (s zapSink) Log(l logx.Level, component, msg string, kv []any) {
	fields := make([]zap.Field, 0, 1+len(kv)/2)
	fields = append(fields, zap.String("component", component))
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = "?"
		}
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	switch l {
	case logx.LevelDebug:
		s.l.Debug(msg, fields...)
	case logx.LevelInfo:
		s.l.Info(msg, fields...)
	case logx.LevelWarn:
		s.l.Warn(msg, fields...)
	default:
		s.l.Error(msg, fields...)
	}
}
