package state

import (
	"sync"

	"github.com/desertthunder/jukebox/internal/formatter"
	"github.com/desertthunder/jukebox/internal/models"
)

// Client holds the client-side view of server-owned jukebox state.
//
// Each snapshot is replaced wholesale by its setter; nothing is merged field
// by field. Concurrent refresh cycles may finish out of order, in which case
// the last setter to run wins; the next poll reconciles whatever that leaves
// visible. The mutex keeps individual swaps atomic, it does not sequence
// competing refreshes.
type Client struct {
	mu       sync.RWMutex
	catalog  models.Catalog
	queue    models.Queue
	status   models.Status
	autoplay bool
}

// NewClient creates an empty client state ready for its first refresh.
func NewClient() *Client {
	return &Client{catalog: models.Catalog{}}
}

// SetCatalog replaces the catalog snapshot. The old mapping is discarded.
func (c *Client) SetCatalog(catalog models.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if catalog == nil {
		catalog = models.Catalog{}
	}
	c.catalog = catalog
}

// SetQueue replaces the queue snapshot.
func (c *Client) SetQueue(queue models.Queue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = queue
}

// SetStatus replaces the playback status snapshot.
func (c *Client) SetStatus(status models.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

// SetAutoplay records the autoplay flag read from the server at startup.
func (c *Client) SetAutoplay(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoplay = enabled
}

// Catalog returns the current catalog snapshot.
func (c *Client) Catalog() models.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

// Queue returns the current queue snapshot.
func (c *Client) Queue() models.Queue {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.queue
}

// Status returns the current playback status snapshot.
func (c *Client) Status() models.Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Autoplay returns the last-known autoplay flag.
func (c *Client) Autoplay() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.autoplay
}

// ToggleAutoplay flips the local autoplay flag and returns the new value.
// The flag is not re-polled, so the local copy is the value to send.
func (c *Client) ToggleAutoplay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoplay = !c.autoplay
	return c.autoplay
}

// Label resolves a hash to its display label, falling back to a placeholder
// when the catalog has not caught up with the queue yet.
func (c *Client) Label(hash string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if track, ok := c.catalog.Get(hash); ok {
		return formatter.Label(track.Name, hash, track.Duration)
	}
	return formatter.Placeholder(hash)
}
