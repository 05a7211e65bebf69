package util

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the production logger used by the service layer and
// the server binary. LOG_LEVEL overrides the default info level.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(logLevel())
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named("mimir"), nil
}

func logLevel() zapcore.Level {
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(s)); err == nil {
			return l
		}
	}
	return zapcore.InfoLevel
}
