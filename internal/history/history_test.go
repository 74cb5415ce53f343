package history

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

func stamped(sub string) *scholarfolio.Profile {
	p := scholarfolio.DefaultProfile(&scholarfolio.SequenceSource{})
	p.Subdomain = sub
	return p
}

func TestUndoRedoRoundTrip(t *testing.T) {
	a, b := stamped("a"), stamped("b")
	h := New(a)
	h.Push(b)

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", got.Subdomain)

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "b", got.Subdomain)
}

func TestBoundsAreNoOps(t *testing.T) {
	h := New(stamped("only"))

	got, ok := h.Undo()
	assert.False(t, ok)
	assert.Equal(t, "only", got.Subdomain)

	got, ok = h.Redo()
	assert.False(t, ok)
	assert.Equal(t, "only", got.Subdomain)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestPushTruncatesRedo(t *testing.T) {
	h := New(stamped("a"))
	h.Push(stamped("b"))
	h.Push(stamped("c"))

	h.Undo()
	h.Undo()
	h.Push(stamped("d"))

	assert.False(t, h.CanRedo())
	assert.Equal(t, "d", h.Current().Subdomain)
	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", got.Subdomain)
}

func TestCapDropsOldest(t *testing.T) {
	h := New(stamped("s0"))
	for i := 1; i <= 60; i++ {
		h.Push(stamped("s" + strconv.Itoa(i)))
	}

	assert.LessOrEqual(t, h.Len(), MaxEntries)
	assert.Equal(t, "s60", h.Current().Subdomain)

	// walk all the way back; the oldest survivor is s11, not s0
	for h.CanUndo() {
		h.Undo()
	}
	assert.Equal(t, "s11", h.Current().Subdomain)
}

func TestResetDiscardsEverything(t *testing.T) {
	h := New(stamped("a"))
	h.Push(stamped("b"))

	h.Reset(stamped("fresh"))
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "fresh", h.Current().Subdomain)
}
