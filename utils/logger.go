package utils

import (
	"log"

	"koobings/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var core zapcore.Core

	if config.IsProduction() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "ts"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder := zapcore.NewJSONEncoder(encoderCfg)

		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFilename(),
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     30, // days
			Compress:   true,
		})
		core = zapcore.NewCore(encoder, sink, zap.InfoLevel)
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		built, err := cfg.Build()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		Logger = built
		zap.ReplaceGlobals(Logger)
		return
	}

	Logger = zap.New(core)
	zap.ReplaceGlobals(Logger)
}

func logFilename() string {
	if config.AppConfig.LogFile != "" {
		return config.AppConfig.LogFile
	}
	return "logs/koobings.log"
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
