// Package history keeps a bounded linear undo stack of document
// snapshots. Entries are full Profile values; the copy-on-write
// mutation engine guarantees pushed snapshots are never aliased, so no
// copying happens here.
package history

import scholarfolio "github.com/scholarfolio/scholarfolio"

// MaxEntries bounds the stack. Pushing beyond it drops the oldest
// entry.
const MaxEntries = 50

// History is a linear snapshot stack with a cursor. Not safe for
// concurrent use; the owning session serializes access.
type History struct {
	entries []*scholarfolio.Profile
	index   int
}

// New returns a history seeded with the initial document state.
func New(initial *scholarfolio.Profile) *History {
	return &History{entries: []*scholarfolio.Profile{initial}}
}

// Current returns the snapshot at the cursor.
func (h *History) Current() *scholarfolio.Profile {
	return h.entries[h.index]
}

// Push records a new state. Any redo entries past the cursor are
// discarded; beyond MaxEntries the oldest entry falls off.
func (h *History) Push(p *scholarfolio.Profile) {
	h.entries = append(h.entries[:h.index+1], p)
	if len(h.entries) > MaxEntries {
		h.entries = h.entries[len(h.entries)-MaxEntries:]
	}
	h.index = len(h.entries) - 1
}

// Undo moves the cursor back one entry and returns it. At the oldest
// entry it returns the current state and false.
func (h *History) Undo() (*scholarfolio.Profile, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.index--
	return h.Current(), true
}

// Redo moves the cursor forward one entry and returns it. At the
// newest entry it returns the current state and false.
func (h *History) Redo() (*scholarfolio.Profile, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.index++
	return h.Current(), true
}

// CanUndo reports whether an older entry exists.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a newer entry exists.
func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }

// Reset discards everything and restarts from p. Used on import.
func (h *History) Reset(p *scholarfolio.Profile) {
	h.entries = []*scholarfolio.Profile{p}
	h.index = 0
}

// Len returns the number of retained entries.
func (h *History) Len() int { return len(h.entries) }
