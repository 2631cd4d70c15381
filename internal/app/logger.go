package app

import (
	"github.com/kakemizuh/gameeconomy/internal/config"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
