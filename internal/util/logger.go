package util

import (
	"fmt"

	"markov-go/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a production zap logger from the logging configuration
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	cfgZap := zap.NewProductionConfig()

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		cfgZap.Level.SetLevel(level)
	}

	if len(cfg.OutputPaths) > 0 {
		cfgZap.OutputPaths = cfg.OutputPaths
	}
	cfgZap.ErrorOutputPaths = []string{"stderr"}

	return cfgZap.Build()
}
