package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/jukebox/internal/state"
	"github.com/urfave/cli/v3"
)

// watchStep is how often the watch loop checks task deadlines.
const watchStep = 250 * time.Millisecond

// Watch polls the server on the configured intervals and prints the status
// line whenever it changes, until interrupted.
func (r *Runner) Watch(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, refresher := r.view()
	scheduler := state.NewScheduler(r.logger)
	refresher.Register(scheduler, r.config.Poll.CatalogInterval(), r.config.Poll.QueueInterval())

	var last string
	scheduler.Add("print", r.config.Poll.QueueInterval(), func(ctx context.Context) error {
		line := state.RenderStatus(client)
		if line == last {
			return nil
		}
		last = line
		return r.writePlainln("%s", line)
	})

	scheduler.Start(ctx, watchStep)
	return nil
}
