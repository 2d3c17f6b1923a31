package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/desertthunder/jukebox/internal/state"
	"github.com/urfave/cli/v3"
)

// QueueList prints the current queue and playback status.
func (r *Runner) QueueList(ctx context.Context, cmd *cli.Command) error {
	client, refresher := r.view()

	if err := refresher.RefreshCatalog(ctx); err != nil {
		// A stale or empty catalog only degrades labels, never the listing.
		r.logger.Warn("catalog refresh failed", "error", err)
	}
	if err := refresher.RefreshView(ctx); err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(client.Queue(), false)
	}
	return r.printView(client)
}

// QueueAdd appends a track to the server queue and prints the refreshed view.
func (r *Runner) QueueAdd(ctx context.Context, cmd *cli.Command) error {
	hash := cmd.StringArg("hash")
	if hash == "" {
		return fmt.Errorf("%w: track hash", shared.ErrMissingArgument)
	}

	client, refresher := r.view()
	if err := refresher.RefreshCatalog(ctx); err != nil {
		r.logger.Warn("catalog refresh failed", "error", err)
	}

	if err := r.dispatcher(refresher).Enqueue(ctx, hash); err != nil {
		return err
	}
	return r.printView(client)
}

// QueueRemove removes a track from the queue by hash and prints the refreshed
// view. The server decides whether one or all occurrences go.
func (r *Runner) QueueRemove(ctx context.Context, cmd *cli.Command) error {
	hash := cmd.StringArg("hash")
	if hash == "" {
		return fmt.Errorf("%w: track hash", shared.ErrMissingArgument)
	}

	client, refresher := r.view()
	if err := refresher.RefreshCatalog(ctx); err != nil {
		r.logger.Warn("catalog refresh failed", "error", err)
	}

	if err := r.dispatcher(refresher).Delete(ctx, hash); err != nil {
		return err
	}
	return r.printView(client)
}

// QueueMove moves the entry at position from to position to (zero-based,
// indices sent verbatim) and prints the refreshed view.
func (r *Runner) QueueMove(ctx context.Context, cmd *cli.Command) error {
	from, err := strconv.Atoi(cmd.StringArg("from"))
	if err != nil {
		return fmt.Errorf("%w: from must be a position index", shared.ErrInvalidArgument)
	}
	to, err := strconv.Atoi(cmd.StringArg("to"))
	if err != nil {
		return fmt.Errorf("%w: to must be a position index", shared.ErrInvalidArgument)
	}

	client, refresher := r.view()
	if err := refresher.RefreshCatalog(ctx); err != nil {
		r.logger.Warn("catalog refresh failed", "error", err)
	}

	if err := r.dispatcher(refresher).Reorder(ctx, state.ReorderCommand{From: from, To: to}); err != nil {
		return err
	}
	return r.printView(client)
}
