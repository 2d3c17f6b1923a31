package state

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/services"
)

// Task names registered by [Refresher.Register].
const (
	TaskCatalog = "catalog"
	TaskView    = "view"
)

// CatalogStore persists the last successful catalog snapshot so a fresh
// process can render before its first poll lands.
type CatalogStore interface {
	Save(catalog models.Catalog) error
	Load() (models.Catalog, error)
}

// Refresher performs poll cycles, replacing client snapshots wholesale.
type Refresher struct {
	svc    services.Service
	client *Client
	store  CatalogStore // optional warm-start persistence
	logger *log.Logger
}

// NewRefresher creates a Refresher. The store may be nil, in which case no
// snapshot is persisted locally.
func NewRefresher(svc services.Service, client *Client, store CatalogStore, logger *log.Logger) *Refresher {
	return &Refresher{svc: svc, client: client, store: store, logger: logger}
}

// WarmStart seeds the catalog from the local store, if one exists. Once the
// first poll succeeds the cached copy is overwritten and never consulted again.
func (r *Refresher) WarmStart() {
	if r.store == nil {
		return
	}
	catalog, err := r.store.Load()
	if err != nil {
		r.logger.Warn("catalog cache unavailable", "error", err)
		return
	}
	if catalog.Len() > 0 {
		r.client.SetCatalog(catalog)
		r.logger.Debug("catalog warm start", "tracks", catalog.Len())
	}
}

// RefreshCatalog fetches the full catalog and replaces the local mapping
// atomically. The previous mapping is fully discarded, not merged.
func (r *Refresher) RefreshCatalog(ctx context.Context) error {
	catalog, err := r.svc.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("catalog refresh: %w", err)
	}
	r.client.SetCatalog(catalog)

	if r.store != nil {
		if err := r.store.Save(catalog); err != nil {
			r.logger.Warn("failed to persist catalog snapshot", "error", err)
		}
	}
	return nil
}

// RefreshQueue fetches the queue and replaces the prior snapshot entirely.
func (r *Refresher) RefreshQueue(ctx context.Context) error {
	queue, err := r.svc.Queue(ctx)
	if err != nil {
		return fmt.Errorf("queue refresh: %w", err)
	}
	r.client.SetQueue(queue)
	return nil
}

// RefreshStatus fetches the playback status and replaces the prior snapshot.
func (r *Refresher) RefreshStatus(ctx context.Context) error {
	status, err := r.svc.Current(ctx)
	if err != nil {
		return fmt.Errorf("status refresh: %w", err)
	}
	r.client.SetStatus(status)
	return nil
}

// RefreshView runs one coupled queue+status cycle: the pair refreshes
// together on the timer and after every mutation.
func (r *Refresher) RefreshView(ctx context.Context) error {
	if err := r.RefreshQueue(ctx); err != nil {
		return err
	}
	return r.RefreshStatus(ctx)
}

// FetchAutoplay reads the autoplay flag once and records it locally. The flag
// is not re-polled afterwards.
func (r *Refresher) FetchAutoplay(ctx context.Context) error {
	enabled, err := r.svc.Autoplay(ctx)
	if err != nil {
		return fmt.Errorf("autoplay fetch: %w", err)
	}
	r.client.SetAutoplay(enabled)
	return nil
}

// Register adds the two polling loops to the scheduler: the catalog on its
// own interval, and the queue+status pair on theirs.
func (r *Refresher) Register(s *Scheduler, catalogEvery, viewEvery time.Duration) {
	s.Add(TaskCatalog, catalogEvery, r.RefreshCatalog)
	s.Add(TaskView, viewEvery, r.RefreshView)
}
