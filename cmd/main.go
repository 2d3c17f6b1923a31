package main

import (
	"context"
	"os"

	"github.com/desertthunder/jukebox/internal/services"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring unreadable config.toml", "error", err)
		}
	}

	svc := services.NewJukeboxService(config.Server.BaseURL, nil)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Service: svc,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "jukebox",
		Usage:    "Terminal client for a shared jukebox server",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
