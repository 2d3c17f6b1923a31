// package services defines interface Service for the jukebox server's HTTP API
package services

import (
	"context"

	"github.com/desertthunder/jukebox/internal/models"
)

// Service is the client contract for the jukebox server's JSON API surface.
//
// Reads return wholesale snapshots of server-owned state; mutations carry no
// version token, so a caller working from a stale snapshot may target indices
// that have shifted server-side. The next refresh reconciles the visible state.
type Service interface {
	// Catalog retrieves the full track catalog.
	Catalog(ctx context.Context) (models.Catalog, error)

	// Queue retrieves the ordered list of queued hashes.
	Queue(ctx context.Context) (models.Queue, error)

	// Current retrieves the playback status snapshot.
	Current(ctx context.Context) (models.Status, error)

	// Enqueue appends a track to the queue. The server decides the position.
	Enqueue(ctx context.Context, hash string) error

	// Delete removes a track from the queue, keyed by hash only. Whether the
	// server removes one occurrence or all of them is the server's call.
	Delete(ctx context.Context, hash string) error

	// Reorder moves the entry at position from to position to. Both indices
	// are sent verbatim.
	Reorder(ctx context.Context, from, to int) error

	// Play starts the next queued track.
	Play(ctx context.Context) error

	// Pause toggles the paused state of the current track.
	Pause(ctx context.Context) error

	// Autoplay reads the server-persisted autoplay flag.
	Autoplay(ctx context.Context) (bool, error)

	// SetAutoplay writes the autoplay flag.
	SetAutoplay(ctx context.Context, enabled bool) error
}
