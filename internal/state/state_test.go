package state

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/services"
	"github.com/desertthunder/jukebox/internal/shared"
	tu "github.com/desertthunder/jukebox/internal/testing"
)

func testCatalog() models.Catalog {
	return models.Catalog{
		"a3f8c91b77e2": {Name: "First", Duration: 125},
		"b1d2e3f4a5b6": {Name: "Second", Duration: 59},
	}
}

func TestClientSnapshots(t *testing.T) {
	t.Run("SetCatalogReplacesWholesale", func(t *testing.T) {
		client := NewClient()
		client.SetCatalog(testCatalog())
		client.SetCatalog(models.Catalog{"zz": {Name: "Only", Duration: 10}})

		if client.Catalog().Len() != 1 {
			t.Errorf("old entries must be discarded, got %d tracks", client.Catalog().Len())
		}
		if _, ok := client.Catalog().Get("a3f8c91b77e2"); ok {
			t.Error("stale entry survived a snapshot replacement")
		}
	})

	t.Run("LastSetterWins", func(t *testing.T) {
		// Two refresh cycles completing out of order: the one that finishes
		// last owns the view, regardless of which was issued first.
		client := NewClient()
		queueA := models.Queue{"a", "b", "c"}
		queueB := models.Queue{"x"}

		client.SetQueue(queueB) // B's response lands first
		client.SetQueue(queueA) // A's response lands second

		if !reflect.DeepEqual(client.Queue(), queueA) {
			t.Errorf("expected A's data to win, got %v", client.Queue())
		}
	})

	t.Run("LabelFallsBackForUnknownHash", func(t *testing.T) {
		client := NewClient()
		client.SetCatalog(testCatalog())

		label := client.Label("ffffffffffff")
		if !strings.Contains(label, "ffffffff") {
			t.Errorf("placeholder should carry the fingerprint: %q", label)
		}
		if strings.Contains(label, "First") {
			t.Errorf("unknown hash must not borrow another track's name: %q", label)
		}
	})

	t.Run("ToggleAutoplay", func(t *testing.T) {
		client := NewClient()
		client.SetAutoplay(true)

		if got := client.ToggleAutoplay(); got {
			t.Error("expected toggle to flip true to false")
		}
		if got := client.ToggleAutoplay(); !got {
			t.Error("expected toggle to flip false to true")
		}
	})
}

func TestRenderQueue(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		client := NewClient()
		client.SetCatalog(testCatalog())
		client.SetQueue(models.Queue{"a3f8c91b77e2", "b1d2e3f4a5b6"})

		first := RenderQueue(client)
		second := RenderQueue(client)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("unchanged state must render identically: %v vs %v", first, second)
		}
	})

	t.Run("DuplicateHashesRenderPerPosition", func(t *testing.T) {
		client := NewClient()
		client.SetCatalog(testCatalog())
		client.SetQueue(models.Queue{"a3f8c91b77e2", "b1d2e3f4a5b6", "a3f8c91b77e2"})

		rows := RenderQueue(client)
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		if rows[0].Hash != rows[2].Hash {
			t.Error("duplicate entries should share a hash")
		}
		if rows[0].Index == rows[2].Index {
			t.Error("duplicate entries must keep distinct position indices")
		}
	})

	t.Run("MissingCatalogEntryDoesNotFailThePass", func(t *testing.T) {
		client := NewClient()
		client.SetCatalog(testCatalog())
		client.SetQueue(models.Queue{"a3f8c91b77e2", "not-in-catalog", "b1d2e3f4a5b6"})

		rows := RenderQueue(client)
		if len(rows) != 3 {
			t.Fatalf("all rows must render, got %d", len(rows))
		}
		if !strings.Contains(rows[0].Label, "First") {
			t.Errorf("known row before the gap should render normally: %q", rows[0].Label)
		}
		if !strings.Contains(rows[1].Label, "unknown") {
			t.Errorf("stale row should get a placeholder: %q", rows[1].Label)
		}
		if !strings.Contains(rows[2].Label, "Second") {
			t.Errorf("known row after the gap should render normally: %q", rows[2].Label)
		}
	})
}

func TestRenderStatus(t *testing.T) {
	t.Run("NothingPlaying", func(t *testing.T) {
		client := NewClient()

		if got := RenderStatus(client); got != NothingPlaying {
			t.Errorf("expected fixed %q state, got %q", NothingPlaying, got)
		}
		if got := Title(client); got != DefaultTitle {
			t.Errorf("expected default title, got %q", got)
		}
	})

	t.Run("LoadScenario", func(t *testing.T) {
		// Page-load scenario: one track in the catalog, queued once, playing
		// at 42 seconds in.
		client := NewClient()
		client.SetCatalog(models.Catalog{"h1": {Name: "Song", Duration: 185}})
		client.SetQueue(models.Queue{"h1"})
		client.SetStatus(models.Status{Hash: "h1", Paused: false, Position: 42, Duration: 185})

		rows := RenderQueue(client)
		if len(rows) != 1 {
			t.Fatalf("expected one queue row, got %d", len(rows))
		}
		if !strings.Contains(rows[0].Label, "03:05") {
			t.Errorf("queue row should carry the track duration clock: %q", rows[0].Label)
		}

		status := RenderStatus(client)
		if !strings.Contains(status, "00:42") {
			t.Errorf("status should carry the elapsed clock: %q", status)
		}
		if !strings.Contains(status, "▶") || strings.Contains(status, "⏸") {
			t.Errorf("glyph should indicate playing, not paused: %q", status)
		}

		if got := Title(client); !strings.Contains(got, "Song") {
			t.Errorf("title should include the track name: %q", got)
		}
	})

	t.Run("PausedGlyph", func(t *testing.T) {
		client := NewClient()
		client.SetCatalog(models.Catalog{"h1": {Name: "Song", Duration: 185}})
		client.SetStatus(models.Status{Hash: "h1", Paused: true, Position: 10, Duration: 185})

		if got := RenderStatus(client); !strings.Contains(got, "⏸") {
			t.Errorf("expected paused glyph: %q", got)
		}
	})

	t.Run("CurrentTrackMissingFromCatalog", func(t *testing.T) {
		client := NewClient()
		client.SetStatus(models.Status{Hash: "deadbeef1234", Position: 5, Duration: 100})

		got := RenderStatus(client)
		if !strings.Contains(got, "deadbeef") {
			t.Errorf("expected fingerprint fallback, got %q", got)
		}
	})
}

func TestGrabAndDrop(t *testing.T) {
	t.Run("CarriesSnapshotIndicesVerbatim", func(t *testing.T) {
		client := NewClient()
		client.SetQueue(models.Queue{"a", "b", "c"})

		grab, ok := client.GrabRow(0)
		if !ok {
			t.Fatal("expected grab of position 0 to succeed")
		}

		cmd := grab.DropAt(2)
		if cmd.From != 0 || cmd.To != 2 {
			t.Errorf("expected {from:0, to:2}, got %+v", cmd)
		}
	})

	t.Run("GrabSurvivesIntermediateRefresh", func(t *testing.T) {
		// The grabbed index is pinned to the snapshot at grab time even when
		// a refresh rewrites the queue underneath it. The server resolves the
		// resulting stale-index race; the client never re-maps indices.
		client := NewClient()
		client.SetQueue(models.Queue{"a", "b", "c"})

		grab, _ := client.GrabRow(2)
		client.SetQueue(models.Queue{"b", "c"})

		cmd := grab.DropAt(0)
		if cmd.From != 2 || cmd.To != 0 {
			t.Errorf("expected pinned indices {from:2, to:0}, got %+v", cmd)
		}
	})

	t.Run("OutOfBoundsGrab", func(t *testing.T) {
		client := NewClient()
		client.SetQueue(models.Queue{"a"})

		if _, ok := client.GrabRow(1); ok {
			t.Error("expected grab past the end to fail")
		}
		if _, ok := client.GrabRow(-1); ok {
			t.Error("expected negative grab to fail")
		}
	})
}

// latencyService delays queue responses until released, to exercise the
// overwrite-wins discipline with controlled response ordering.
type latencyService struct {
	*tu.MockService
	mu      sync.Mutex
	pending []chan models.Queue
}

func (l *latencyService) Queue(ctx context.Context) (models.Queue, error) {
	ch := make(chan models.Queue)
	l.mu.Lock()
	l.pending = append(l.pending, ch)
	l.mu.Unlock()
	return <-ch, nil
}

func (l *latencyService) release(i int, q models.Queue) {
	l.mu.Lock()
	ch := l.pending[i]
	l.mu.Unlock()
	ch <- q
}

var _ services.Service = (*latencyService)(nil)

func TestOverwriteWins(t *testing.T) {
	// Refresh A is issued before refresh B, but B's response arrives first.
	// The view must reflect A's data: last to complete wins.
	svc := &latencyService{MockService: &tu.MockService{}}
	client := NewClient()
	refresher := NewRefresher(svc, client, nil, shared.NewLogger(&tu.FWriter{}))

	var wg sync.WaitGroup
	wg.Add(2)

	done := make(chan int, 2)
	go func() {
		defer wg.Done()
		refresher.RefreshQueue(context.Background()) // A
		done <- 0
	}()
	go func() {
		defer wg.Done()
		refresher.RefreshQueue(context.Background()) // B
		done <- 1
	}()

	// Wait for both requests to be in flight, then complete B before A.
	for {
		svc.mu.Lock()
		inflight := len(svc.pending)
		svc.mu.Unlock()
		if inflight == 2 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	svc.release(1, models.Queue{"from-b"})
	<-done
	svc.release(0, models.Queue{"from-a"})
	<-done
	wg.Wait()

	if !reflect.DeepEqual(client.Queue(), models.Queue{"from-a"}) {
		t.Errorf("expected the last response to win, got %v", client.Queue())
	}
}
