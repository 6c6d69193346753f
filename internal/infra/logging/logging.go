package logging

import (
	"log/slog"

	"github.com/ormanli/simple-interest/internal/app/interest"
)

// Setup setups logger configuration and reports the loaded configuration at debug level.
func Setup(cfg interest.Config) {
	if cfg.InitDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Debug("Loaded configuration", "init_debug", cfg.InitDebug)
}
