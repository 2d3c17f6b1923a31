// Package state implements the client's synchronization loop with the jukebox server.
//
// The package is built around three pieces:
//   - [Client] : the injectable snapshot store. Catalog, queue, and playback
//     status are each replaced wholesale by a refresh; the last response to
//     complete wins, with no sequencing or cancellation of in-flight requests.
//   - [Refresher] + [Scheduler] : the polling loops, expressed as named tasks
//     with explicit intervals so tests can drive ticks deterministically.
//   - [Dispatcher] : one-shot mutations (enqueue, delete, reorder, play,
//     pause, autoplay), each followed by a forced queue+status refresh except
//     the fire-and-forget autoplay write.
//
// Reordering follows drag-and-drop semantics: [Client.GrabRow] pins
// the source index against the last-rendered snapshot, [Grab.DropAt] pairs it
// with the drop index, and the command goes to the server verbatim. No
// optimistic local reordering is ever applied.
package state
