package state

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/services"
	"github.com/desertthunder/jukebox/internal/shared"
	"golang.org/x/time/rate"
)

// Dispatcher issues mutations against the server and triggers the forced
// queue+status refresh that follows each one.
//
// Mutations are not retried and carry no version token; a failure surfaces
// only as the returned error. The limiter keeps key repeat in the TUI from
// flooding the server with moves.
type Dispatcher struct {
	svc     services.Service
	limiter *rate.Limiter
	logger  *log.Logger
	refresh func(ctx context.Context) error
}

// NewDispatcher creates a Dispatcher. refresh is invoked after every mutation
// except SetAutoplay, which is fire-and-forget.
func NewDispatcher(svc services.Service, logger *log.Logger, refresh func(ctx context.Context) error) *Dispatcher {
	return &Dispatcher{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(10), 5),
		logger:  logger,
		refresh: refresh,
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	requestID := shared.GenerateID()
	d.logger.Debug("dispatching mutation", "op", op, "request_id", requestID)

	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := fn(ctx); err != nil {
		d.logger.Error("mutation failed", "op", op, "request_id", requestID, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// afterMutation forces the coupled queue+status refresh so the view reflects
// the server's new authoritative order promptly.
func (d *Dispatcher) afterMutation(ctx context.Context) error {
	if d.refresh == nil {
		return nil
	}
	return d.refresh(ctx)
}

// Enqueue appends a track to the server queue, then refreshes the view.
// The server decides the append position.
func (d *Dispatcher) Enqueue(ctx context.Context, hash string) error {
	if err := d.dispatch(ctx, "enqueue", func(ctx context.Context) error {
		return d.svc.Enqueue(ctx, hash)
	}); err != nil {
		return err
	}
	return d.afterMutation(ctx)
}

// Delete removes a track from the queue by hash, then refreshes the view.
// Whether one occurrence or all of them go is the server's deletion policy.
func (d *Dispatcher) Delete(ctx context.Context, hash string) error {
	if err := d.dispatch(ctx, "delete", func(ctx context.Context) error {
		return d.svc.Delete(ctx, hash)
	}); err != nil {
		return err
	}
	return d.afterMutation(ctx)
}

// Reorder sends a move command with its snapshot indices verbatim, then
// refreshes the view to pick up the server's new authoritative order.
func (d *Dispatcher) Reorder(ctx context.Context, cmd ReorderCommand) error {
	if err := d.dispatch(ctx, "reorder", func(ctx context.Context) error {
		return d.svc.Reorder(ctx, cmd.From, cmd.To)
	}); err != nil {
		return err
	}
	return d.afterMutation(ctx)
}

// Play starts the next queued track, then refreshes the view so the glyph
// updates promptly.
func (d *Dispatcher) Play(ctx context.Context) error {
	if err := d.dispatch(ctx, "play", d.svc.Play); err != nil {
		return err
	}
	return d.afterMutation(ctx)
}

// Pause toggles the paused state, then refreshes the view.
func (d *Dispatcher) Pause(ctx context.Context) error {
	if err := d.dispatch(ctx, "pause", d.svc.Pause); err != nil {
		return err
	}
	return d.afterMutation(ctx)
}

// SetAutoplay writes the autoplay flag. Fire-and-forget: no refresh follows,
// since the flag is read once at startup and never re-polled.
func (d *Dispatcher) SetAutoplay(ctx context.Context, enabled bool) error {
	return d.dispatch(ctx, "autoplay_set", func(ctx context.Context) error {
		return d.svc.SetAutoplay(ctx, enabled)
	})
}
