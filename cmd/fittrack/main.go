package main

import (
	"log/slog"
	"os"

	"github.com/templui/fittrack/internal/cli"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logger.Init(os.Stderr, cfg.IsDevelopment(), cfg.LogLevel, cfg.SentryDSN)
	sessionID := logger.StartSession()
	slog.Debug("session started", "app", cfg.AppName, "driver", cfg.DBDriver, "session", sessionID)

	// Storage failures surface here and abort the process.
	err := cli.NewRootCmd(cfg).Execute()
	if err != nil {
		slog.Error("command failed", "error", err)
		return 1
	}
	return 0
}
