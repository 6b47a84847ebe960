package logger

import (
	"cura-booking-service/internal/app/config"
	"cura-booking-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func outputPaths(driverConfig *config.DriverConfig, env string) (outputs []string, errorOutputs []string) {
	switch env {
	case constvars.AppEnvProduction:
		return []string{driverConfig.Logger.OutputFileName},
			[]string{"stderr", driverConfig.Logger.OutputErrorFileName}
	default:
		return []string{"stdout"}, []string{"stderr"}
	}
}

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (*zap.Logger, error) {
	outputs, errorOutputs := outputPaths(driverConfig, internalConfig.App.Env)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level)),
		Development:      internalConfig.App.Env == constvars.AppEnvDevelopment,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: errorOutputs,
		InitialFields: map[string]interface{}{
			"version": internalConfig.App.Version,
		},
	}

	return cfg.Build()
}
