package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

func link(id, match string) scholarfolio.InlineLink {
	return scholarfolio.InlineLink{ID: id, MatchText: match}
}

func TestSplitBasics(t *testing.T) {
	segs := Split("Hello world", nil)
	require.Len(t, segs, 1)
	assert.Equal(t, "Hello world", segs[0].Text)
	assert.Nil(t, segs[0].Link)

	segs = Split("Hello world", []scholarfolio.InlineLink{link("l1", "world")})
	require.Len(t, segs, 2)
	assert.Equal(t, "Hello ", segs[0].Text)
	assert.Equal(t, "world", segs[1].Text)
	require.NotNil(t, segs[1].Link)
	assert.Equal(t, "l1", segs[1].Link.ID)
}

func TestSplitCaseInsensitivePreservesOriginal(t *testing.T) {
	segs := Split("The DIRECTOR spoke", []scholarfolio.InlineLink{link("l1", "director")})
	require.Len(t, segs, 3)
	assert.Equal(t, "DIRECTOR", segs[1].Text)
	assert.NotNil(t, segs[1].Link)
}

func TestSplitClaimedNeverResplit(t *testing.T) {
	segs := Split("cabc", []scholarfolio.InlineLink{link("l1", "a"), link("l2", "ab")})
	require.Len(t, segs, 3)
	assert.Equal(t, "c", segs[0].Text)
	assert.Nil(t, segs[0].Link)
	assert.Equal(t, "a", segs[1].Text)
	require.NotNil(t, segs[1].Link)
	assert.Equal(t, "l1", segs[1].Link.ID)
	assert.Equal(t, "bc", segs[2].Text)
	assert.Nil(t, segs[2].Link)
}

func TestSplitEmptyMatchSkipped(t *testing.T) {
	segs := Split("abc", []scholarfolio.InlineLink{link("bad", ""), link("l1", "b")})
	require.Len(t, segs, 3)
	assert.Equal(t, "b", segs[1].Text)
	require.NotNil(t, segs[1].Link)
	assert.Equal(t, "l1", segs[1].Link.ID)
}

func TestSplitLosesNoCharacters(t *testing.T) {
	text := "Dedicated to pushing the boundaries of Computer Vision."
	links := []scholarfolio.InlineLink{link("l1", "pushing"), link("l2", "vision"), link("l3", "the")}
	assert.Equal(t, text, joined(Split(text, links)))
}

func TestSplitMultipleOccurrences(t *testing.T) {
	segs := Split("go go go", []scholarfolio.InlineLink{link("l1", "go")})
	claimed := 0
	for _, s := range segs {
		if s.Link != nil {
			claimed++
			assert.Equal(t, "go", s.Text)
		}
	}
	assert.Equal(t, 3, claimed)
	assert.Equal(t, "go go go", joined(segs))
}

func TestSplitIdempotentOnUnclaimedText(t *testing.T) {
	links := []scholarfolio.InlineLink{link("l1", "alpha")}
	once := Split("alpha beta alpha", links)

	// re-running segmentation over each unclaimed run changes nothing
	for _, seg := range once {
		if seg.Link != nil {
			continue
		}
		again := Split(seg.Text, links)
		for _, s := range again {
			assert.Nil(t, s.Link)
		}
		assert.Equal(t, seg.Text, joined(again))
	}
}
