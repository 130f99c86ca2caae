package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envKey   = "LOG_ENV"
	levelKey = "LOG_LEVEL"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = build(os.Getenv(envKey), os.Getenv(levelKey))
	if err != nil {
		log.Fatal("logger init: ", err)
	}
}

// build picks the preset by env ("dev" when empty, "prod" or "none") and
// optionally overrides its level. Output goes to stderr so command output stays clean.
func build(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "", "dev":
		cfg = zap.NewDevelopmentConfig()
	case "prod":
		cfg = zap.NewProductionConfig()
	case "none":
		return zap.NewNop(), nil
	default:
		return nil, &unknownEnvError{env: env}
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

type unknownEnvError struct {
	env string
}

func (e *unknownEnvError) Error() string {
	return "unknown " + envKey + " " + e.env
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	_ = logger.Sync()
}
