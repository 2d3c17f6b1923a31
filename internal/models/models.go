// package models defines the data model for the jukebox client
package models

// Track is the catalog metadata for a single piece of media.
//
// Identity is the content hash used as the catalog key; a Track never changes once fetched.
type Track struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// Catalog maps content hash to [Track]. The server owns the authoritative copy;
// the client holds a read-through snapshot replaced wholesale on every poll.
type Catalog map[string]Track

// Get looks up a track by hash.
func (c Catalog) Get(hash string) (Track, bool) {
	t, ok := c[hash]
	return t, ok
}

// Len returns the number of known tracks.
func (c Catalog) Len() int {
	return len(c)
}

// Queue is the server-authoritative ordered list of content hashes awaiting playback.
// Duplicates are permitted: a track may be queued more than once.
type Queue []string

// Len returns the number of queued entries.
func (q Queue) Len() int {
	return len(q)
}

// IsEmpty returns true if nothing is queued.
func (q Queue) IsEmpty() bool {
	return len(q) == 0
}

// InBounds reports whether index is a valid position in the queue.
func (q Queue) InBounds(index int) bool {
	return index >= 0 && index < len(q)
}

// Status is the playback snapshot returned by the server's current endpoint.
//
// The server sends a JSON null hash when nothing is playing, which unmarshals
// to the empty string.
type Status struct {
	Hash     string  `json:"hash"`
	Paused   bool    `json:"paused"`
	Position float64 `json:"position"`
	Duration float64 `json:"duration"`
}

// HasTrack returns true if a track is currently loaded.
func (s Status) HasTrack() bool {
	return s.Hash != ""
}

// ProgressPercent returns elapsed position as a percentage of duration (0-100).
func (s Status) ProgressPercent() float64 {
	if !s.HasTrack() || s.Duration <= 0 {
		return 0
	}
	return s.Position / s.Duration * 100
}
