package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/docpath"
)

func newSession(t *testing.T) *EditorSession {
	t.Helper()
	return New(&scholarfolio.SequenceSource{}, nil, "", "")
}

func TestUpdateByPathRecordsHistory(t *testing.T) {
	s := newSession(t)
	before := s.Profile()

	require.True(t, s.UpdateByPath("name.text", "Dr. Ada Lovelace"))
	assert.Equal(t, "Dr. Ada Lovelace", s.Profile().Name.Text)
	assert.Equal(t, "Your Name", before.Name.Text)

	require.True(t, s.Undo())
	assert.Equal(t, "Your Name", s.Profile().Name.Text)
	require.True(t, s.Redo())
	assert.Equal(t, "Dr. Ada Lovelace", s.Profile().Name.Text)
}

func TestUpdateByPathMissingIsNoOp(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.UpdateByPath("pages.9.title", "x"))
	assert.False(t, s.CanUndo())
}

func TestUpdateManyOneHistoryEntry(t *testing.T) {
	s := newSession(t)
	applied := s.UpdateMany([]docpath.Update{
		{Path: docpath.Parse("pages.0.layout.0.items.0.image"), Value: "data:image/png;base64,abc"},
		{Path: docpath.Parse("pages.0.layout.0.items.0.icon"), Value: "none"},
	})
	assert.Equal(t, 2, applied)

	require.True(t, s.Undo())
	assert.Empty(t, s.Profile().Pages[0].Layout[0].Items[0].Image)
	assert.False(t, s.CanUndo())
}

func TestInsertItemDefaults(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.AddBlock(s.ActivePageID(), scholarfolio.BlockContactGrid))
	require.NoError(t, s.AddBlock(s.ActivePageID(), scholarfolio.BlockTechnicalSkills))

	require.True(t, s.InsertItem("pages.0.layout.1"))
	items := s.Profile().Pages[0].Layout[1].Items
	got := items[len(items)-1]
	assert.Equal(t, scholarfolio.IconEmail, got.Icon)
	assert.Equal(t, "PLATFORM", got.Text)

	require.True(t, s.InsertItem("pages.0.layout.2"))
	items = s.Profile().Pages[0].Layout[2].Items
	got = items[len(items)-1]
	assert.Empty(t, got.Date)
	assert.Equal(t, "New Item", got.Text)
}

func TestAddPageBecomesActive(t *testing.T) {
	s := newSession(t)
	pg := s.AddPage()
	assert.Equal(t, pg.ID, s.ActivePageID())
	assert.Len(t, s.Profile().Pages, 2)
}

func TestDeletePageGuards(t *testing.T) {
	s := newSession(t)
	only := s.Profile().Pages[0].ID

	assert.ErrorIs(t, s.DeletePage(only), scholarfolio.ErrLastPage)
	assert.ErrorIs(t, s.DeletePage("nope"), scholarfolio.ErrPageNotFound)

	pg := s.AddPage()
	require.NoError(t, s.DeletePage(pg.ID))
	assert.Equal(t, only, s.ActivePageID())
	assert.Len(t, s.Profile().Pages, 1)
}

func TestDeletePageClearsDanglingRefs(t *testing.T) {
	s := newSession(t)
	pg := s.AddPage()
	require.NoError(t, s.SetActivePage(s.Profile().Pages[0].ID))

	require.True(t, s.AddInlineLink("pages.0.layout.0.items.0", "boundaries"))
	linkID := s.Profile().Pages[0].Layout[0].Items[0].InlineLinks[0].ID
	require.True(t, s.UpdateMany([]docpath.Update{
		{Path: docpath.Parse("pages.0.layout.0.items.0.inlineLinks.0.linkType"), Value: "internal"},
		{Path: docpath.Parse("pages.0.layout.0.items.0.inlineLinks.0.internalPageId"), Value: pg.ID},
	}) == 2)

	require.NoError(t, s.DeletePage(pg.ID))
	link := s.Profile().Pages[0].Layout[0].Items[0].InlineLinks[0]
	assert.Equal(t, linkID, link.ID)
	assert.Empty(t, link.InternalPageID)
	assert.Equal(t, scholarfolio.LinkNone, link.LinkType)
}

func TestRemoveAtClearsSelection(t *testing.T) {
	s := newSession(t)
	s.Select("item", "pages.0.layout.0.items.0")

	require.True(t, s.RemoveAt("pages.0.layout.0.items.0"))
	assert.Nil(t, s.Selection())
}

func TestRemoveAtKeepsUnrelatedSelection(t *testing.T) {
	s := newSession(t)
	s.Select("name", "name")

	require.True(t, s.RemoveAt("pages.0.layout.0.items.0"))
	sel := s.Selection()
	require.NotNil(t, sel)
	assert.Equal(t, "name", sel.Path)
}

func TestDeleteBlockClearsSelection(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.AddBlock(s.ActivePageID(), scholarfolio.BlockAboutMe))
	id := s.Profile().Pages[0].Layout[1].ID
	s.Select("item", "pages.0.layout.1.items.0")

	require.True(t, s.DeleteBlock(s.ActivePageID(), id))
	assert.Nil(t, s.Selection())

	s.Select("title", "pages.0.layout.0.title")
	require.True(t, s.DeleteBlock(s.ActivePageID(), s.Profile().Pages[0].Layout[0].ID))
	assert.Nil(t, s.Selection())
}

func TestDeletePageClearsSelection(t *testing.T) {
	s := newSession(t)
	pg := s.AddPage()
	s.Select("page", "pages.1.title")

	require.NoError(t, s.DeletePage(pg.ID))
	assert.Nil(t, s.Selection())
}

func TestMoveBlock(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.AddBlock(s.ActivePageID(), scholarfolio.BlockAboutMe))
	first := s.Profile().Pages[0].Layout[0].ID
	second := s.Profile().Pages[0].Layout[1].ID

	assert.False(t, s.MoveBlock(s.ActivePageID(), first, -1))
	require.True(t, s.MoveBlock(s.ActivePageID(), first, 1))
	assert.Equal(t, second, s.Profile().Pages[0].Layout[0].ID)
	assert.Equal(t, first, s.Profile().Pages[0].Layout[1].ID)
}

func TestDeleteBlock(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.AddBlock(s.ActivePageID(), scholarfolio.BlockFunding))
	id := s.Profile().Pages[0].Layout[1].ID

	require.True(t, s.DeleteBlock(s.ActivePageID(), id))
	assert.Len(t, s.Profile().Pages[0].Layout, 1)
	assert.False(t, s.DeleteBlock(s.ActivePageID(), id))
}

func TestInlineLinkAddRemove(t *testing.T) {
	s := newSession(t)
	require.True(t, s.AddInlineLink("pages.0.layout.0.items.0", "world-class"))
	links := s.Profile().Pages[0].Layout[0].Items[0].InlineLinks
	require.Len(t, links, 1)

	require.True(t, s.RemoveInlineLink("pages.0.layout.0.items.0", links[0].ID))
	assert.Empty(t, s.Profile().Pages[0].Layout[0].Items[0].InlineLinks)
	assert.False(t, s.RemoveInlineLink("pages.0.layout.0.items.0", links[0].ID))
}

func TestImportResetsHistory(t *testing.T) {
	s := newSession(t)
	require.True(t, s.UpdateByPath("subdomain", "changed"))
	require.True(t, s.CanUndo())

	raw := []byte(`{"profile":{"subdomain":"imported","name":{"id":"n"},"pages":[{"id":"px","title":"P","layout":[]}]},"theme":"theme-5","primaryColor":"#002147"}`)
	require.NoError(t, s.ImportSnapshot(raw))

	assert.Equal(t, "imported", s.Profile().Subdomain)
	assert.Equal(t, scholarfolio.Theme5, s.Theme())
	assert.Equal(t, "#002147", s.PrimaryColor())
	assert.Equal(t, "px", s.ActivePageID())
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}

func TestImportMalformedLeavesSessionUntouched(t *testing.T) {
	s := newSession(t)
	require.True(t, s.UpdateByPath("subdomain", "keep-me"))

	err := s.ImportSnapshot([]byte(`{"profile": [1,2]}`))
	require.ErrorIs(t, err, scholarfolio.ErrMalformedSnapshot)
	assert.Equal(t, "keep-me", s.Profile().Subdomain)
	assert.True(t, s.CanUndo())
}

func TestImportPartialKeepsCurrentValues(t *testing.T) {
	s := newSession(t)
	s.SetTheme(scholarfolio.Theme3)
	require.NoError(t, s.ImportSnapshot([]byte(`{"primaryColor":"#E77500"}`)))

	assert.Equal(t, scholarfolio.Theme3, s.Theme())
	assert.Equal(t, "#E77500", s.PrimaryColor())
	assert.Equal(t, "scholar-portal", s.Profile().Subdomain)
}
