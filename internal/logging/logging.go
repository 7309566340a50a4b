// Package logging builds the zap logger the rest of the application receives
// by injection.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rcliao/health-journal/internal/config"
)

// New constructs a logger from config. Console encoding on stderr by default
// so command output on stdout stays clean; JSON when configured.
func New(cfg config.LogConfig) *zap.Logger {
	level := zapcore.WarnLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if cfg.JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
