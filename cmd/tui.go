package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/repositories"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/desertthunder/jukebox/internal/state"
	"github.com/desertthunder/jukebox/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive queue view.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.svc == nil {
		return fmt.Errorf("%w: jukebox service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger = shared.WithLogger(fileLogger, "component", "tui")
	shared.SetLogLevel(fileLogger, log.DebugLevel)
	r.SetLogger(fileLogger)

	var store state.CatalogStore
	if db, err := shared.NewDatabase(r.config.Cache.Path); err != nil {
		// The cache only warms the first paint, so a broken one is not fatal.
		fileLogger.Warn("catalog cache unavailable", "path", r.config.Cache.Path, "error", err)
	} else {
		defer db.Close()
		if cache, err := repositories.NewCatalogCache(db); err != nil {
			fileLogger.Warn("catalog cache schema failed", "error", err)
		} else {
			store = cache
		}
	}

	client := state.NewClient()
	refresher := state.NewRefresher(r.svc, client, store, fileLogger)
	refresher.WarmStart()

	dispatcher := state.NewDispatcher(r.svc, fileLogger, refresher.RefreshView)

	model := ui.NewModel(ctx, client, refresher, dispatcher,
		r.config.Poll.CatalogInterval(), r.config.Poll.QueueInterval(), fileLogger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
