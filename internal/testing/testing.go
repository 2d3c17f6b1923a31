// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/desertthunder/jukebox/internal/models"
)

// MockService is a test double for [services.Service] with canned snapshots.
//
// Every call is appended to Calls so tests can assert exactly what was
// dispatched and in what order.
type MockService struct {
	mu sync.Mutex

	CatalogValue  models.Catalog
	QueueValue    models.Queue
	CurrentValue  models.Status
	AutoplayValue bool
	Err           error

	Calls []string
}

func (m *MockService) record(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

// CallLog returns a copy of the recorded call sequence.
func (m *MockService) CallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Calls...)
}

func (m *MockService) Catalog(ctx context.Context) (models.Catalog, error) {
	m.record("catalog")
	return m.CatalogValue, m.Err
}

func (m *MockService) Queue(ctx context.Context) (models.Queue, error) {
	m.record("queue")
	return m.QueueValue, m.Err
}

func (m *MockService) Current(ctx context.Context) (models.Status, error) {
	m.record("current")
	return m.CurrentValue, m.Err
}

func (m *MockService) Enqueue(ctx context.Context, hash string) error {
	m.record("enqueue:%s", hash)
	return m.Err
}

func (m *MockService) Delete(ctx context.Context, hash string) error {
	m.record("delete:%s", hash)
	return m.Err
}

func (m *MockService) Reorder(ctx context.Context, from, to int) error {
	m.record("reorder:%d:%d", from, to)
	return m.Err
}

func (m *MockService) Play(ctx context.Context) error {
	m.record("play")
	return m.Err
}

func (m *MockService) Pause(ctx context.Context) error {
	m.record("pause")
	return m.Err
}

func (m *MockService) Autoplay(ctx context.Context) (bool, error) {
	m.record("autoplay_get")
	return m.AutoplayValue, m.Err
}

func (m *MockService) SetAutoplay(ctx context.Context, enabled bool) error {
	m.record("autoplay_set:%t", enabled)
	return m.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
