// Package session owns the live editing state: one document, its undo
// history, and the presentation settings around it. Every mutation
// goes through the copy-on-write path engine and records a history
// entry, so undo and redo are pointer swaps. All methods are safe for
// concurrent use; the websocket handler and HTTP endpoints share one
// session per server.
package session

import (
	"fmt"
	"strings"
	"sync"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/docpath"
	"github.com/scholarfolio/scholarfolio/internal/history"
	"github.com/scholarfolio/scholarfolio/internal/snapshot"
)

// Selection identifies the editable node the user last clicked.
type Selection struct {
	ElementType string `json:"elementType"`
	Path        string `json:"path"`
}

// EditorSession holds the document, history, and view state for one
// editing surface.
type EditorSession struct {
	mu sync.Mutex

	ids          scholarfolio.IDSource
	hist         *history.History
	profile      *scholarfolio.Profile
	theme        scholarfolio.ThemeID
	primaryColor string
	activePageID string
	selection    *Selection
	searchQuery  string
}

// New creates a session seeded from the given snapshot state. A nil
// profile starts from the built-in default document.
func New(ids scholarfolio.IDSource, p *scholarfolio.Profile, theme scholarfolio.ThemeID, primaryColor string) *EditorSession {
	if ids == nil {
		ids = scholarfolio.UUIDSource{}
	}
	if p == nil {
		p = scholarfolio.DefaultProfile(ids)
	}
	if theme == "" {
		theme = snapshot.DefaultTheme
	}
	if primaryColor == "" {
		primaryColor = snapshot.DefaultPrimaryColor
	}
	s := &EditorSession{
		ids:          ids,
		profile:      p,
		hist:         history.New(p),
		theme:        theme,
		primaryColor: primaryColor,
	}
	if len(p.Pages) > 0 {
		s.activePageID = p.Pages[0].ID
	}
	return s
}

// Profile returns the current document. Callers must treat it as
// read-only; mutations go through the session methods.
func (s *EditorSession) Profile() *scholarfolio.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Theme returns the active theme id.
func (s *EditorSession) Theme() scholarfolio.ThemeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// PrimaryColor returns the active accent color.
func (s *EditorSession) PrimaryColor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.primaryColor
}

// ActivePageID returns the id of the page being viewed.
func (s *EditorSession) ActivePageID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePageID
}

// Selection returns the current selection, or nil when nothing is
// selected.
func (s *EditorSession) Selection() *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SearchQuery returns the live highlight query.
func (s *EditorSession) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// commit swaps in the new document and records it. Callers hold s.mu.
func (s *EditorSession) commit(p *scholarfolio.Profile) {
	s.profile = p
	s.hist.Push(p)
}

// clearSelectionUnder drops the selection when the deleted subtree at
// prefix contained it. Paths under the prefix may still resolve after
// the splice, but to a different node, so a resolve check is not
// enough. Callers hold s.mu.
func (s *EditorSession) clearSelectionUnder(prefix string) {
	if s.selection == nil {
		return
	}
	if s.selection.Path == prefix || strings.HasPrefix(s.selection.Path, prefix+".") {
		s.selection = nil
	}
}

// UpdateByPath sets one value in the document. Unresolvable paths are
// no-ops and report false.
func (s *EditorSession) UpdateByPath(path string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := docpath.Set(s.profile, docpath.Parse(path), value)
	if !ok {
		return false
	}
	s.commit(next)
	return true
}

// UpdateMany applies several path updates as one history entry and
// returns how many resolved.
func (s *EditorSession) UpdateMany(updates []docpath.Update) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, applied := docpath.SetMany(s.profile, updates)
	if applied == 0 {
		return 0
	}
	s.commit(next)
	return applied
}

// RemoveAt deletes the slice element at path.
func (s *EditorSession) RemoveAt(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := docpath.RemoveAt(s.profile, docpath.Parse(path))
	if !ok {
		return false
	}
	s.commit(next)
	s.clearSelectionUnder(path)
	return true
}

// InsertItem appends a type-appropriate default item to the block at
// blockPath (e.g. "pages.0.layout.2").
func (s *EditorSession) InsertItem(blockPath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := docpath.Parse(blockPath)
	v, ok := docpath.Get(s.profile, p)
	if !ok {
		return false
	}
	blk, ok := v.(scholarfolio.Block)
	if !ok {
		return false
	}
	item := scholarfolio.NewItemForBlock(s.ids, blk.Type)
	next, ok := docpath.Append(s.profile, append(p, docpath.F("items")), item)
	if !ok {
		return false
	}
	s.commit(next)
	return true
}

// AddPage appends an empty page and makes it active.
func (s *EditorSession) AddPage() scholarfolio.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	pg := scholarfolio.NewPage(s.ids)
	next := s.profile.Clone()
	next.Pages = append(next.Pages, pg)
	s.commit(next)
	s.activePageID = pg.ID
	return pg
}

// AppendPage adds an already-built page, such as a markdown import,
// and makes it active.
func (s *EditorSession) AppendPage(pg scholarfolio.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.profile.Clone()
	next.Pages = append(next.Pages, pg.Clone())
	s.commit(next)
	s.activePageID = pg.ID
}

// DeletePage removes the page with the given id. The last remaining
// page cannot be deleted. Inline links and items that targeted the
// deleted page have their internal reference cleared so no dangling
// page ids survive; if that page was active, the first page becomes
// active.
func (s *EditorSession) DeletePage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.profile.PageIndex(id)
	if idx < 0 {
		return scholarfolio.ErrPageNotFound
	}
	if len(s.profile.Pages) == 1 {
		return scholarfolio.ErrLastPage
	}
	next := s.profile.Clone()
	next.Pages = append(next.Pages[:idx], next.Pages[idx+1:]...)
	clearPageRefs(next, id)
	s.commit(next)
	s.clearSelectionUnder(fmt.Sprintf("pages.%d", idx))
	if s.activePageID == id {
		s.activePageID = next.Pages[0].ID
	}
	return nil
}

func clearItemRef(it *scholarfolio.Item, pageID string) {
	if it.InternalPageID == pageID {
		it.InternalPageID = ""
		if it.LinkType == scholarfolio.LinkInternal {
			it.LinkType = scholarfolio.LinkNone
		}
	}
	for i := range it.InlineLinks {
		l := &it.InlineLinks[i]
		if l.InternalPageID == pageID {
			l.InternalPageID = ""
			if l.LinkType == scholarfolio.LinkInternal {
				l.LinkType = scholarfolio.LinkNone
			}
		}
	}
}

func clearPageRefs(p *scholarfolio.Profile, pageID string) {
	clearItemRef(&p.Name, pageID)
	clearItemRef(&p.Contact.Email, pageID)
	for i := range p.Contact.Links {
		clearItemRef(&p.Contact.Links[i], pageID)
	}
	for pi := range p.Pages {
		for bi := range p.Pages[pi].Layout {
			b := &p.Pages[pi].Layout[bi]
			clearItemRef(&b.Title, pageID)
			for ii := range b.Items {
				clearItemRef(&b.Items[ii], pageID)
			}
		}
	}
}

// AddBlock appends a default block of type t to the page with the
// given id.
func (s *EditorSession) AddBlock(pageID string, t scholarfolio.BlockType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.profile.PageIndex(pageID)
	if idx < 0 {
		return scholarfolio.ErrPageNotFound
	}
	next := s.profile.Clone()
	next.Pages[idx].Layout = append(next.Pages[idx].Layout, scholarfolio.NewBlock(s.ids, t))
	s.commit(next)
	return nil
}

// DeleteBlock removes a block from a page by id.
func (s *EditorSession) DeleteBlock(pageID, blockID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi := s.profile.PageIndex(pageID)
	if pi < 0 {
		return false
	}
	bi := blockIndex(s.profile.Pages[pi].Layout, blockID)
	if bi < 0 {
		return false
	}
	next := s.profile.Clone()
	layout := next.Pages[pi].Layout
	next.Pages[pi].Layout = append(layout[:bi], layout[bi+1:]...)
	s.commit(next)
	s.clearSelectionUnder(fmt.Sprintf("pages.%d.layout.%d", pi, bi))
	return true
}

// MoveBlock shifts a block up (delta -1) or down (delta +1) within its
// page. Moves past either end are no-ops.
func (s *EditorSession) MoveBlock(pageID, blockID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi := s.profile.PageIndex(pageID)
	if pi < 0 {
		return false
	}
	bi := blockIndex(s.profile.Pages[pi].Layout, blockID)
	if bi < 0 {
		return false
	}
	target := bi + delta
	if target < 0 || target >= len(s.profile.Pages[pi].Layout) {
		return false
	}
	next := s.profile.Clone()
	layout := next.Pages[pi].Layout
	layout[bi], layout[target] = layout[target], layout[bi]
	s.commit(next)
	return true
}

func blockIndex(layout []scholarfolio.Block, id string) int {
	for i := range layout {
		if layout[i].ID == id {
			return i
		}
	}
	return -1
}

// AddInlineLink attaches a new link segment matching matchText to the
// item at itemPath.
func (s *EditorSession) AddInlineLink(itemPath, matchText string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := docpath.Parse(itemPath)
	if _, ok := docpath.Get(s.profile, p); !ok {
		return false
	}
	link := scholarfolio.NewInlineLink(s.ids, matchText)
	next, ok := docpath.Append(s.profile, append(p, docpath.F("inlineLinks")), link)
	if !ok {
		return false
	}
	s.commit(next)
	return true
}

// RemoveInlineLink deletes the link with the given id from the item at
// itemPath.
func (s *EditorSession) RemoveInlineLink(itemPath, linkID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := docpath.Parse(itemPath)
	v, ok := docpath.Get(s.profile, p)
	if !ok {
		return false
	}
	it, ok := v.(scholarfolio.Item)
	if !ok {
		return false
	}
	for i, l := range it.InlineLinks {
		if l.ID == linkID {
			next, ok := docpath.RemoveAt(s.profile, append(p, docpath.F("inlineLinks"), docpath.I(i)))
			if !ok {
				return false
			}
			s.commit(next)
			return true
		}
	}
	return false
}

// Undo steps the document back one history entry.
func (s *EditorSession) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.hist.Undo()
	if !ok {
		return false
	}
	s.profile = p
	s.ensureActivePage()
	return true
}

// Redo steps the document forward one history entry.
func (s *EditorSession) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.profile = p
	s.ensureActivePage()
	return true
}

// CanUndo reports whether Undo would change state.
func (s *EditorSession) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanUndo()
}

// CanRedo reports whether Redo would change state.
func (s *EditorSession) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanRedo()
}

// ensureActivePage repairs the active page id after history moves or
// imports change the page list. Callers hold s.mu.
func (s *EditorSession) ensureActivePage() {
	if s.profile.PageIndex(s.activePageID) < 0 && len(s.profile.Pages) > 0 {
		s.activePageID = s.profile.Pages[0].ID
	}
}

// SetTheme switches the active theme. Not a document mutation; themes
// sit outside history.
func (s *EditorSession) SetTheme(t scholarfolio.ThemeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}

// SetPrimaryColor switches the accent color.
func (s *EditorSession) SetPrimaryColor(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primaryColor = c
}

// SetActivePage switches the visible page.
func (s *EditorSession) SetActivePage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.PageIndex(id) < 0 {
		return fmt.Errorf("%w: %s", scholarfolio.ErrPageNotFound, id)
	}
	s.activePageID = id
	return nil
}

// Select records the clicked editable node.
func (s *EditorSession) Select(elementType, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = &Selection{ElementType: elementType, Path: path}
}

// ClearSelection drops the current selection.
func (s *EditorSession) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
}

// SetSearchQuery updates the live highlight query.
func (s *EditorSession) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

// ImportSnapshot replaces session state from a snapshot file. The
// payload is decoded fully before any state changes; on success the
// history restarts at a single entry. Fields absent from the payload
// keep their current values.
func (s *EditorSession) ImportSnapshot(raw []byte) error {
	snap, err := snapshot.Decode(raw)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Profile != nil {
		s.profile = snap.Profile
		s.hist.Reset(snap.Profile)
		s.selection = nil
		s.ensureActivePage()
	}
	if snap.Theme != "" {
		s.theme = snap.Theme
	}
	if snap.PrimaryColor != "" {
		s.primaryColor = snap.PrimaryColor
	}
	return nil
}

// Snapshot captures the exportable state.
func (s *EditorSession) Snapshot() snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot.Snapshot{
		Profile:      s.profile,
		Theme:        s.theme,
		PrimaryColor: s.primaryColor,
	}
}
