// Package logging configures the process-wide zap logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds the global logger from env and installs it via
// zap.ReplaceGlobals. LOG_FORMAT=console switches to the development encoder;
// LOG_LEVEL accepts the usual zap level names (default info).
func Init() error {
	var cfg zap.Config
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return err
		}
		cfg.Level.SetLevel(level)
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// L returns a component-scoped sugared logger.
func L(component string) *zap.SugaredLogger {
	return zap.S().Named(component)
}
