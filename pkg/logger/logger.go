// Package logger configures the process-wide zap logger.
package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	initOnce   sync.Once
	global     *zap.Logger
	globalErr  error
	globalStop func()
)

// Initialize builds the process logger exactly once; repeated calls return
// the same logger. Configuration comes from LOG_LEVEL and LOG_TIME_FORMAT.
func Initialize() (*zap.Logger, func(), error) {
	initOnce.Do(func() {
		global, globalStop, globalErr = New()
	})
	return global, globalStop, globalErr
}

// New builds a logger from the current configuration. Most callers want
// Initialize; New exists for tests and embedders that manage their own
// logger lifetime.
func New() (*zap.Logger, func(), error) {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	level, err := zapcore.ParseLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(
		viper.GetString("LOG_TIME_FORMAT"))

	log, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Sync()
	}

	return log, cleanup, nil
}
