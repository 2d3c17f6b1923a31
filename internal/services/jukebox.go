// Jukebox server implementation of [Service]
//
// Endpoint paths and body shapes match the server's JSON contract; the server
// owns the byte-exact formats.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
)

const defaultBaseURL = "http://127.0.0.1:5000"

// hashBody is the request body for enqueue and delete mutations.
type hashBody struct {
	Hash string `json:"hash"`
}

// reorderBody carries the two snapshot indices of a move request.
type reorderBody struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// JukeboxService implements [Service] against the jukebox server's HTTP API.
type JukeboxService struct {
	baseURL    string
	httpClient *http.Client
}

// NewJukeboxService creates a new jukebox API client.
//
// The base URL defaults to the server's local development address and the
// client defaults to [http.DefaultClient].
func NewJukeboxService(baseURL string, client *http.Client) *JukeboxService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &JukeboxService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// doRequest performs an HTTP request against the server API, marshaling body
// (when non-nil) as JSON and decoding the response into result (when non-nil).
func (j *JukeboxService) doRequest(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, j.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := j.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s returned status %d", shared.ErrAPIRequest, method, path, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Catalog retrieves the full track catalog as a hash → track mapping.
func (j *JukeboxService) Catalog(ctx context.Context) (models.Catalog, error) {
	var catalog models.Catalog
	if err := j.doRequest(ctx, http.MethodGet, "/api/musics", nil, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Queue retrieves the ordered list of queued hashes.
func (j *JukeboxService) Queue(ctx context.Context) (models.Queue, error) {
	var queue models.Queue
	if err := j.doRequest(ctx, http.MethodGet, "/api/queue", nil, &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// Current retrieves the playback status snapshot.
func (j *JukeboxService) Current(ctx context.Context) (models.Status, error) {
	var status models.Status
	if err := j.doRequest(ctx, http.MethodGet, "/api/current", nil, &status); err != nil {
		return models.Status{}, err
	}
	return status, nil
}

// Enqueue appends the track with the given hash to the server queue.
func (j *JukeboxService) Enqueue(ctx context.Context, hash string) error {
	return j.doRequest(ctx, http.MethodPost, "/api/queue", hashBody{Hash: hash}, nil)
}

// Delete removes the track with the given hash from the server queue.
// The request carries the hash only, never a position.
func (j *JukeboxService) Delete(ctx context.Context, hash string) error {
	return j.doRequest(ctx, http.MethodDelete, "/api/queue", hashBody{Hash: hash}, nil)
}

// Reorder moves the queue entry at from to position to, indices verbatim.
func (j *JukeboxService) Reorder(ctx context.Context, from, to int) error {
	return j.doRequest(ctx, http.MethodPost, "/api/queue/reorder", reorderBody{From: from, To: to}, nil)
}

// Play starts the next queued track.
func (j *JukeboxService) Play(ctx context.Context) error {
	return j.doRequest(ctx, http.MethodPost, "/api/play", nil, nil)
}

// Pause toggles the paused state of the current track.
func (j *JukeboxService) Pause(ctx context.Context) error {
	return j.doRequest(ctx, http.MethodPost, "/api/pause", nil, nil)
}

// Autoplay reads the server-persisted autoplay flag.
func (j *JukeboxService) Autoplay(ctx context.Context) (bool, error) {
	var enabled bool
	if err := j.doRequest(ctx, http.MethodGet, "/api/autoplay_get", nil, &enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

// SetAutoplay writes the autoplay flag. The boolean itself is the body.
func (j *JukeboxService) SetAutoplay(ctx context.Context, enabled bool) error {
	return j.doRequest(ctx, http.MethodPost, "/api/autoplay_set", enabled, nil)
}
