package state

import (
	"fmt"

	"github.com/desertthunder/jukebox/internal/formatter"
)

const (
	glyphPlaying = "▶"
	glyphPaused  = "⏸"

	// NothingPlaying is the fixed status shown when no track is current.
	NothingPlaying = "nothing playing"

	// DefaultTitle is the terminal title when no track is current.
	DefaultTitle = "jukebox"
)

// QueueRow is one rendered queue position.
type QueueRow struct {
	Index int
	Hash  string
	Label string
}

// RenderQueue produces display rows for the current queue snapshot.
//
// A hash missing from the catalog renders as a placeholder row; one stale
// entry never fails the rest of the pass.
func RenderQueue(c *Client) []QueueRow {
	queue := c.Queue()
	rows := make([]QueueRow, len(queue))
	for i, hash := range queue {
		rows[i] = QueueRow{Index: i, Hash: hash, Label: c.Label(hash)}
	}
	return rows
}

// RenderStatus produces the one-line playback status: glyph, elapsed clock,
// and the current track's label.
func RenderStatus(c *Client) string {
	status := c.Status()
	if !status.HasTrack() {
		return NothingPlaying
	}

	glyph := glyphPlaying
	if status.Paused {
		glyph = glyphPaused
	}

	return fmt.Sprintf("%s %s / %s  %s", glyph, formatter.Clock(status.Position), formatter.Clock(status.Duration), c.Label(status.Hash))
}

// Title returns the terminal title for the current playback state.
func Title(c *Client) string {
	status := c.Status()
	if !status.HasTrack() {
		return DefaultTitle
	}
	if track, ok := c.Catalog().Get(status.Hash); ok {
		return fmt.Sprintf("%s - %s", DefaultTitle, track.Name)
	}
	return fmt.Sprintf("%s - %s", DefaultTitle, formatter.Fingerprint(status.Hash))
}
