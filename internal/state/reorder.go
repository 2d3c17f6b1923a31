package state

// Grab pins the position of a queue row at the moment the user picks it up.
//
// The index is a position in the last-rendered snapshot, not necessarily the
// server's current order: another mutation may land before the drop. That race
// is part of the wire contract (there is no version token), so the indices
// are carried verbatim and the refresh after the move reconciles the view.
type Grab struct {
	From int
	Hash string
}

// ReorderCommand is the move mutation produced by dropping a grabbed row.
type ReorderCommand struct {
	From int
	To   int
}

// GrabRow captures the row at index in the current queue snapshot.
// Returns false when the index is out of bounds.
func (c *Client) GrabRow(index int) (Grab, bool) {
	queue := c.Queue()
	if !queue.InBounds(index) {
		return Grab{}, false
	}
	return Grab{From: index, Hash: queue[index]}, true
}

// DropAt builds the move command for dropping the grabbed row on the row at
// to. No local reordering happens here; the command carries exactly the
// grab-time and drop-time indices.
func (g Grab) DropAt(to int) ReorderCommand {
	return ReorderCommand{From: g.From, To: to}
}
