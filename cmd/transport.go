package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/desertthunder/jukebox/internal/state"
	"github.com/urfave/cli/v3"
)

// Now prints the current playback status line.
func (r *Runner) Now(ctx context.Context, cmd *cli.Command) error {
	client, refresher := r.view()

	if err := refresher.RefreshCatalog(ctx); err != nil {
		r.logger.Warn("catalog refresh failed", "error", err)
	}
	if err := refresher.RefreshStatus(ctx); err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(client.Status(), false)
	}
	return r.writePlainln("%s", state.RenderStatus(client))
}

// Play asks the server to start the next queued track.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	client, refresher := r.view()
	if err := refresher.RefreshCatalog(ctx); err != nil {
		r.logger.Warn("catalog refresh failed", "error", err)
	}

	if err := r.dispatcher(refresher).Play(ctx); err != nil {
		return err
	}
	return r.writePlainln("%s", state.RenderStatus(client))
}

// Pause toggles the server's paused state.
func (r *Runner) Pause(ctx context.Context, cmd *cli.Command) error {
	client, refresher := r.view()
	if err := refresher.RefreshCatalog(ctx); err != nil {
		r.logger.Warn("catalog refresh failed", "error", err)
	}

	if err := r.dispatcher(refresher).Pause(ctx); err != nil {
		return err
	}
	return r.writePlainln("%s", state.RenderStatus(client))
}

// AutoplayGet prints the server's autoplay flag.
func (r *Runner) AutoplayGet(ctx context.Context, cmd *cli.Command) error {
	enabled, err := r.svc.Autoplay(ctx)
	if err != nil {
		return err
	}
	return r.writePlainln("autoplay: %t", enabled)
}

// AutoplaySet writes the autoplay flag on the server.
func (r *Runner) AutoplaySet(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("enabled")
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%w: enabled must be true or false", shared.ErrInvalidArgument)
	}

	client, refresher := r.view()
	client.SetAutoplay(enabled)
	if err := r.dispatcher(refresher).SetAutoplay(ctx, enabled); err != nil {
		return err
	}
	return r.writePlainln("autoplay: %t", enabled)
}
