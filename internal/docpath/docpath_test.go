package docpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

func newProfile(t *testing.T) *scholarfolio.Profile {
	t.Helper()
	return scholarfolio.DefaultProfile(&scholarfolio.SequenceSource{})
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", nil},
		{"subdomain", Path{F("subdomain")}},
		{"pages.0.title", Path{F("pages"), I(0), F("title")}},
		{"pages.2.layout.1.items.0.text", Path{F("pages"), I(2), F("layout"), I(1), F("items"), I(0), F("text")}},
		{"themeSettings.theme-3.accentColor", Path{F("themeSettings"), F("theme-3"), F("accentColor")}},
	}
	for _, tt := range tests {
		got := Parse(tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
		assert.Equal(t, tt.in, got.String())
	}
}

func TestGet(t *testing.T) {
	p := newProfile(t)

	v, ok := Get(p, Parse("name.text"))
	require.True(t, ok)
	assert.Equal(t, "Your Name", v)

	v, ok = Get(p, Parse("pages.0.layout.0.type"))
	require.True(t, ok)
	assert.Equal(t, scholarfolio.BlockBioHero, v)

	_, ok = Get(p, Parse("pages.9.title"))
	assert.False(t, ok)

	_, ok = Get(p, Parse("name.bogusField"))
	assert.False(t, ok)
}

func TestSetIsCopyOnWrite(t *testing.T) {
	p := newProfile(t)

	next, ok := Set(p, Parse("pages.0.title"), "Research")
	require.True(t, ok)
	require.NotSame(t, p, next)

	assert.Equal(t, "Home", p.Pages[0].Title)
	assert.Equal(t, "Research", next.Pages[0].Title)
}

func TestSetCreatesIntermediateContainers(t *testing.T) {
	p := newProfile(t)
	p.Pages[0].Layout[0].Items[0].Style = nil
	p.ThemeSettings = nil

	next, ok := Set(p, Parse("pages.0.layout.0.items.0.style.color"), "#336699")
	require.True(t, ok)
	require.NotNil(t, next.Pages[0].Layout[0].Items[0].Style)
	assert.Equal(t, "#336699", next.Pages[0].Layout[0].Items[0].Style.Color)

	next, ok = Set(next, Parse("themeSettings.theme-2.accentColor"), "#ff0000")
	require.True(t, ok)
	require.Contains(t, next.ThemeSettings, scholarfolio.Theme2)
	assert.Equal(t, "#ff0000", next.ThemeSettings[scholarfolio.Theme2].AccentColor)
}

func TestSetMissingPathIsTotal(t *testing.T) {
	p := newProfile(t)

	next, ok := Set(p, Parse("pages.7.layout.0.title.text"), "x")
	assert.False(t, ok)
	assert.Same(t, p, next)

	next, ok = Set(p, Parse("pages.0.nonsense"), "x")
	assert.False(t, ok)
	assert.Same(t, p, next)
}

func TestSetWholeComposite(t *testing.T) {
	p := newProfile(t)

	item := scholarfolio.Item{ID: "i-x", Text: "replaced"}
	next, ok := Set(p, Parse("pages.0.layout.0.items.0"), item)
	require.True(t, ok)
	assert.Equal(t, "replaced", next.Pages[0].Layout[0].Items[0].Text)
	assert.Equal(t, "i-x", next.Pages[0].Layout[0].Items[0].ID)
}

func TestSetManySingleCopy(t *testing.T) {
	p := newProfile(t)

	next, applied := SetMany(p, []Update{
		{Path: Parse("pages.0.layout.0.items.0.image"), Value: "data:image/png;base64,xxx"},
		{Path: Parse("pages.0.layout.0.items.0.icon"), Value: "none"},
		{Path: Parse("pages.44.title"), Value: "skipped"},
	})
	assert.Equal(t, 2, applied)
	assert.Equal(t, "data:image/png;base64,xxx", next.Pages[0].Layout[0].Items[0].Image)
	assert.Equal(t, scholarfolio.IconNone, next.Pages[0].Layout[0].Items[0].Icon)

	// untouched original
	assert.NotEqual(t, "data:image/png;base64,xxx", p.Pages[0].Layout[0].Items[0].Image)
}

func TestRemoveAt(t *testing.T) {
	p := newProfile(t)
	ids := &scholarfolio.SequenceSource{}
	p.Pages[0].Layout = append(p.Pages[0].Layout, scholarfolio.NewBlock(ids, scholarfolio.BlockContactGrid))

	next, ok := RemoveAt(p, Parse("pages.0.layout.0"))
	require.True(t, ok)
	require.Len(t, next.Pages[0].Layout, 1)
	assert.Equal(t, scholarfolio.BlockContactGrid, next.Pages[0].Layout[0].Type)
	assert.Len(t, p.Pages[0].Layout, 2)

	_, ok = RemoveAt(p, Parse("pages.0.layout.9"))
	assert.False(t, ok)

	_, ok = RemoveAt(p, Parse("pages.0.layout"))
	assert.False(t, ok)
}

func TestNegativeIndexIsTotal(t *testing.T) {
	p := newProfile(t)
	paths := []Path{
		{F("pages"), I(-1), F("title")},
		{F("pages"), I(0), F("layout"), I(-1)},
		{F("pages"), I(0), F("layout"), I(0), F("items"), I(-2), F("text")},
		{F("contact"), F("links"), I(-1)},
	}
	for _, pa := range paths {
		_, ok := Get(p, pa)
		assert.False(t, ok, "Get %s", pa)

		next, ok := Set(p, pa, "x")
		assert.False(t, ok, "Set %s", pa)
		assert.Same(t, p, next)

		next, ok = RemoveAt(p, pa)
		assert.False(t, ok, "RemoveAt %s", pa)
		assert.Same(t, p, next)
	}
}

func TestAppend(t *testing.T) {
	p := newProfile(t)
	ids := &scholarfolio.SequenceSource{}

	next, ok := Append(p, Parse("pages.0.layout.0.items"), scholarfolio.NewItemForBlock(ids, scholarfolio.BlockBioHero))
	require.True(t, ok)
	assert.Len(t, next.Pages[0].Layout[0].Items, 2)
	assert.Len(t, p.Pages[0].Layout[0].Items, 1)

	link := scholarfolio.NewInlineLink(ids, "boundaries")
	next, ok = Append(next, Parse("pages.0.layout.0.items.0.inlineLinks"), link)
	require.True(t, ok)
	require.Len(t, next.Pages[0].Layout[0].Items[0].InlineLinks, 1)
	assert.Equal(t, "boundaries", next.Pages[0].Layout[0].Items[0].InlineLinks[0].MatchText)

	_, ok = Append(p, Parse("pages.0.title"), "not-a-slice")
	assert.False(t, ok)
}
