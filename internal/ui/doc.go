// Package ui implements the interactive terminal client using bubbletea's Elm architecture.
//
// The TUI is a stateless renderer over two polling loops plus user-triggered
// one-shot mutations:
//  1. [QueueView] : queued tracks with grab/drop reordering and deletion
//  2. [CatalogView] : browse the full catalog and enqueue tracks
//
// Two [tea.Tick] timers drive the catalog and queue+status refreshes; every
// mutation is followed by a forced refresh inside the dispatcher, so the view
// converges on the server's authoritative order without local prediction.
// Reordering pins the grabbed row's snapshot index and sends the grab/drop
// index pair verbatim, a keyboard rendition of drag-and-drop.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, d, space, a, tab,
// q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
