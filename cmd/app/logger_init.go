package main

import (
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/config"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
)

// initStdoutLogger is the fallback when the log directory is not writable
func initStdoutLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	))
}
