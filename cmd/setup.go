package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/jukebox/internal/repositories"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter config file and initializes the catalog cache.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.logger.Info("config file created", "path", configPath)
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load created config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	}

	r.logger.Info("initializing catalog cache", "path", config.Cache.Path)

	db, err := shared.NewDatabase(config.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to create cache database: %w", err)
	}
	defer db.Close()

	// Single connection: sqlite snapshot writes are serialized anyway.
	shared.ConfigureDatabase(db, 1, 1)

	if _, err := repositories.NewCatalogCache(db); err != nil {
		return fmt.Errorf("failed to initialize catalog cache: %w", err)
	}

	r.logger.Infof("setup complete, server is %v", config.Server.BaseURL)
	return nil
}
