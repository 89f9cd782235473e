package logger_di

import (
	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/di/config"
	"github.com/osmnav/wayplanner/pkg/logger"
)

// New provides the process logger. Takes the config so viper is populated
// before the logger reads LOG_LEVEL.
func New(_ *config.Config) (*zap.Logger, func(), error) {
	return logger.Initialize()
}
