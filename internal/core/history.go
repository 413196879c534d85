package core

// EditHistory is a linear undo/redo buffer of whole-document text snapshots
// for one local editing session. It is seeded from the loaded content, lives
// only in memory and is discarded when the session is torn down. Saving is a
// separate explicit action; undo and redo never trigger a save or a revision
// log entry.
type EditHistory struct {
	snapshots []string
	index     int
}

// NewEditHistory creates a history seeded with the initial snapshot.
func NewEditHistory(initial string) *EditHistory {
	return &EditHistory{snapshots: []string{initial}}
}

// Push truncates any redo entries beyond the current position, appends the
// snapshot and moves the position to it.
func (h *EditHistory) Push(snapshot string) {
	h.snapshots = append(h.snapshots[:h.index+1], snapshot)
	h.index = len(h.snapshots) - 1
}

// Undo steps back one snapshot and returns the snapshot at the new position.
// At the oldest snapshot it is a no-op.
func (h *EditHistory) Undo() string {
	if h.index > 0 {
		h.index--
	}
	return h.snapshots[h.index]
}

// Redo steps forward one snapshot and returns the snapshot at the new
// position. At the newest snapshot it is a no-op.
func (h *EditHistory) Redo() string {
	if h.index < len(h.snapshots)-1 {
		h.index++
	}
	return h.snapshots[h.index]
}

// Current returns the snapshot at the current position.
func (h *EditHistory) Current() string {
	return h.snapshots[h.index]
}

// CanUndo reports whether Undo would move the position.
func (h *EditHistory) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether Redo would move the position.
func (h *EditHistory) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

// Len returns the number of snapshots in the buffer.
func (h *EditHistory) Len() int {
	return len(h.snapshots)
}
