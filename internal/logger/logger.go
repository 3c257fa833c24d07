// Package logger builds the zap loggers used by the modsym command.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the level and destination of log output. With an empty
// FileName logs go to stderr; otherwise to a rotated file.
type Config struct {
	Level      string `mapstructure:"level"`
	FileName   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"` // megabytes
	MaxAge     int    `mapstructure:"maxage"`  // days
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

// New returns a JSON logger for cfg.
func New(cfg Config) (*zap.Logger, error) {
	return newWithStderr(cfg, os.Stderr)
}

func newWithStderr(cfg Config, stderr io.Writer) (*zap.Logger, error) {
	level := new(zapcore.Level)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	}

	core := zapcore.NewCore(getEncoder(), getLogWriter(cfg, stderr), level)
	return zap.New(core, zap.AddCaller()), nil
}

func getEncoder() zapcore.Encoder {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.TimeKey = "time"
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encodeConfig)
}

func getLogWriter(cfg Config, stderr io.Writer) zapcore.WriteSyncer {
	if cfg.FileName == "" {
		return zapcore.AddSync(stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FileName,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	})
}
