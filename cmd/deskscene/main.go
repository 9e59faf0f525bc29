// Package main is the entry point for the deskscene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/app"
	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== deskscene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the app
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to initialize", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("runtime error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
