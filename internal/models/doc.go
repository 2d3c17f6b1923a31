// Package models defines the snapshot types the jukebox client holds between polls.
//
// All three snapshots mirror server-owned state and are replaced wholesale on
// every refresh, never merged field by field:
//   - [Catalog] : full hash → track metadata mapping
//   - [Queue] : ordered pending hashes (duplicates allowed)
//   - [Status] : current track, paused flag, elapsed position
//
// A hash referenced by the Queue or Status may briefly be absent from the
// Catalog because the two refresh on independent timers; consumers must treat
// that as a transient inconsistency, not an error.
package models
