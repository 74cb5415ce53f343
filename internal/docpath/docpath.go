// Package docpath addresses and mutates nodes of a scholarfolio.Profile
// by dotted path ("pages.0.layout.2.items.1.text"). All operations are
// total: a path that does not resolve yields ok=false and leaves the
// document untouched. Mutating operations are copy-on-write and return
// a new Profile, so callers can hold earlier values as history
// snapshots without defensive copying.
package docpath

import (
	"encoding/json"
	"strconv"
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

// Kind discriminates path segment variants.
type Kind int

const (
	// KindField names a struct field or theme-settings entry.
	KindField Kind = iota
	// KindIndex selects a slice element.
	KindIndex
)

// Segment is one step of a Path.
type Segment struct {
	Kind  Kind
	Field string
	Index int
}

// F returns a field segment.
func F(name string) Segment { return Segment{Kind: KindField, Field: name} }

// I returns an index segment.
func I(i int) Segment { return Segment{Kind: KindIndex, Index: i} }

// Path locates a node in the document tree.
type Path []Segment

// Parse splits a dotted path into segments. Purely numeric tokens
// become index segments. An empty string parses to an empty path.
func Parse(s string) Path {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if n, err := strconv.Atoi(part); err == nil && part == strconv.Itoa(n) && n >= 0 {
			p = append(p, I(n))
			continue
		}
		p = append(p, F(part))
	}
	return p
}

// String renders the dotted form.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		if seg.Kind == KindIndex {
			b.WriteString(strconv.Itoa(seg.Index))
		} else {
			b.WriteString(seg.Field)
		}
	}
	return b.String()
}

// resolve walks the tree to a pointer at the node path addresses.
// With create set, nil optional containers (style, layoutConfig,
// themeSettings entries) are allocated along the way.
func resolve(root *scholarfolio.Profile, path Path, create bool) (any, bool) {
	var cur any = root
	for _, seg := range path {
		next, ok := step(cur, seg, create)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func step(cur any, seg Segment, create bool) (any, bool) {
	switch node := cur.(type) {
	case *scholarfolio.Profile:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "subdomain":
			return &node.Subdomain, true
		case "name":
			return &node.Name, true
		case "pages":
			return &node.Pages, true
		case "contact":
			return &node.Contact, true
		case "themeSettings":
			if node.ThemeSettings == nil {
				if !create {
					return nil, false
				}
				node.ThemeSettings = map[scholarfolio.ThemeID]*scholarfolio.ThemeSettings{}
			}
			return node.ThemeSettings, true
		}
		return nil, false

	case map[scholarfolio.ThemeID]*scholarfolio.ThemeSettings:
		if seg.Kind != KindField {
			return nil, false
		}
		id := scholarfolio.ThemeID(seg.Field)
		entry, ok := node[id]
		if !ok || entry == nil {
			if !create {
				return nil, false
			}
			entry = &scholarfolio.ThemeSettings{}
			node[id] = entry
		}
		return entry, true

	case *scholarfolio.ThemeSettings:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "backgroundColor":
			return &node.BackgroundColor, true
		case "headerColor":
			return &node.HeaderColor, true
		case "sidebarColor":
			return &node.SidebarColor, true
		case "accentColor":
			return &node.AccentColor, true
		}
		return nil, false

	case *[]scholarfolio.Page:
		if seg.Kind != KindIndex || seg.Index < 0 || seg.Index >= len(*node) {
			return nil, false
		}
		return &(*node)[seg.Index], true

	case *scholarfolio.Page:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "id":
			return &node.ID, true
		case "title":
			return &node.Title, true
		case "layout":
			return &node.Layout, true
		}
		return nil, false

	case *[]scholarfolio.Block:
		if seg.Kind != KindIndex || seg.Index < 0 || seg.Index >= len(*node) {
			return nil, false
		}
		return &(*node)[seg.Index], true

	case *scholarfolio.Block:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "id":
			return &node.ID, true
		case "type":
			return &node.Type, true
		case "title":
			return &node.Title, true
		case "items":
			return &node.Items, true
		case "layoutConfig":
			if node.LayoutConfig == nil {
				if !create {
					return nil, false
				}
				node.LayoutConfig = &scholarfolio.LayoutConfig{}
			}
			return node.LayoutConfig, true
		}
		return nil, false

	case *scholarfolio.LayoutConfig:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "columns":
			return &node.Columns, true
		case "showImage":
			return &node.ShowImage, true
		case "imagePosition":
			return &node.ImagePosition, true
		case "width":
			return &node.Width, true
		case "backgroundColor":
			return &node.BackgroundColor, true
		case "aspectRatio":
			return &node.AspectRatio, true
		case "itemHeight":
			return &node.ItemHeight, true
		}
		return nil, false

	case *[]scholarfolio.Item:
		if seg.Kind != KindIndex || seg.Index < 0 || seg.Index >= len(*node) {
			return nil, false
		}
		return &(*node)[seg.Index], true

	case *scholarfolio.Item:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "id":
			return &node.ID, true
		case "text":
			return &node.Text, true
		case "subtext":
			return &node.Subtext, true
		case "url":
			return &node.URL, true
		case "linkType":
			return &node.LinkType, true
		case "internalPageId":
			return &node.InternalPageID, true
		case "inlineLinks":
			return &node.InlineLinks, true
		case "label":
			return &node.Label, true
		case "image":
			return &node.Image, true
		case "date":
			return &node.Date, true
		case "icon":
			return &node.Icon, true
		case "customIcon":
			return &node.CustomIcon, true
		case "style":
			if node.Style == nil {
				if !create {
					return nil, false
				}
				node.Style = &scholarfolio.ElementStyle{}
			}
			return node.Style, true
		}
		return nil, false

	case *[]scholarfolio.InlineLink:
		if seg.Kind != KindIndex || seg.Index < 0 || seg.Index >= len(*node) {
			return nil, false
		}
		return &(*node)[seg.Index], true

	case *scholarfolio.InlineLink:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "id":
			return &node.ID, true
		case "matchText":
			return &node.MatchText, true
		case "url":
			return &node.URL, true
		case "linkType":
			return &node.LinkType, true
		case "internalPageId":
			return &node.InternalPageID, true
		case "style":
			if node.Style == nil {
				if !create {
					return nil, false
				}
				node.Style = &scholarfolio.ElementStyle{}
			}
			return node.Style, true
		}
		return nil, false

	case *scholarfolio.Contact:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "email":
			return &node.Email, true
		case "links":
			return &node.Links, true
		}
		return nil, false

	case *scholarfolio.ElementStyle:
		if seg.Kind != KindField {
			return nil, false
		}
		switch seg.Field {
		case "fontSize":
			return &node.FontSize, true
		case "color":
			return &node.Color, true
		case "fontFamily":
			return &node.FontFamily, true
		case "fontWeight":
			return &node.FontWeight, true
		case "fontStyle":
			return &node.FontStyle, true
		case "textDecoration":
			return &node.TextDecoration, true
		case "textAlign":
			return &node.TextAlign, true
		case "backgroundColor":
			return &node.BackgroundColor, true
		case "borderRadius":
			return &node.BorderRadius, true
		case "padding":
			return &node.Padding, true
		case "opacity":
			return &node.Opacity, true
		case "width":
			return &node.Width, true
		case "height":
			return &node.Height, true
		case "lineHeight":
			return &node.LineHeight, true
		case "scale":
			return &node.Scale, true
		}
		return nil, false
	}
	return nil, false
}

// Get returns the value at path. Composite nodes come back as shallow
// copies of the addressed struct or slice header; treat the result as
// read-only.
func Get(p *scholarfolio.Profile, path Path) (any, bool) {
	if p == nil || len(path) == 0 {
		return nil, false
	}
	ptr, ok := resolve(p, path, false)
	if !ok {
		return nil, false
	}
	return deref(ptr), true
}

func deref(ptr any) any {
	switch v := ptr.(type) {
	case *string:
		return *v
	case *int:
		return *v
	case *bool:
		return *v
	case *float64:
		return *v
	case *scholarfolio.LinkType:
		return *v
	case *scholarfolio.BlockType:
		return *v
	case *scholarfolio.IconName:
		return *v
	case *scholarfolio.WidthClass:
		return *v
	case *scholarfolio.Item:
		return *v
	case *scholarfolio.Block:
		return *v
	case *scholarfolio.Page:
		return *v
	case *scholarfolio.InlineLink:
		return *v
	case *scholarfolio.Contact:
		return *v
	case *scholarfolio.ElementStyle:
		return *v
	case *scholarfolio.LayoutConfig:
		return *v
	case *scholarfolio.ThemeSettings:
		return *v
	case *[]scholarfolio.Page:
		return *v
	case *[]scholarfolio.Block:
		return *v
	case *[]scholarfolio.Item:
		return *v
	case *[]scholarfolio.InlineLink:
		return *v
	}
	return ptr
}

// assign decodes value into the node behind ptr. Values arrive either
// as native document types or as decoded JSON (string, float64, bool,
// map, slice), so a JSON round trip covers both uniformly.
func assign(ptr any, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, ptr) == nil
}

// Set writes value at path on a copy of the document. Missing optional
// containers along the path are created; a path that cannot resolve or
// a value that cannot decode returns the original document and false.
func Set(p *scholarfolio.Profile, path Path, value any) (*scholarfolio.Profile, bool) {
	if p == nil || len(path) == 0 {
		return p, false
	}
	next := p.Clone()
	ptr, ok := resolve(next, path, true)
	if !ok {
		return p, false
	}
	if !assign(ptr, value) {
		return p, false
	}
	return next, true
}

// Update is one path/value pair for SetMany.
type Update struct {
	Path  Path
	Value any
}

// SetMany applies all updates to a single copy of the document,
// skipping any that do not resolve. It returns the new document and
// the number of updates applied; with zero applied the original
// document is returned unchanged.
func SetMany(p *scholarfolio.Profile, updates []Update) (*scholarfolio.Profile, int) {
	if p == nil || len(updates) == 0 {
		return p, 0
	}
	next := p.Clone()
	applied := 0
	for _, u := range updates {
		if len(u.Path) == 0 {
			continue
		}
		ptr, ok := resolve(next, u.Path, true)
		if !ok {
			continue
		}
		if assign(ptr, u.Value) {
			applied++
		}
	}
	if applied == 0 {
		return p, 0
	}
	return next, applied
}

// RemoveAt deletes the slice element path points at. The final segment
// must be an index into one of the document's slices.
func RemoveAt(p *scholarfolio.Profile, path Path) (*scholarfolio.Profile, bool) {
	if p == nil || len(path) == 0 {
		return p, false
	}
	last := path[len(path)-1]
	if last.Kind != KindIndex || last.Index < 0 {
		return p, false
	}
	next := p.Clone()
	ptr, ok := resolve(next, path[:len(path)-1], false)
	if !ok {
		return p, false
	}
	i := last.Index
	switch s := ptr.(type) {
	case *[]scholarfolio.Page:
		if i >= len(*s) {
			return p, false
		}
		*s = append((*s)[:i], (*s)[i+1:]...)
	case *[]scholarfolio.Block:
		if i >= len(*s) {
			return p, false
		}
		*s = append((*s)[:i], (*s)[i+1:]...)
	case *[]scholarfolio.Item:
		if i >= len(*s) {
			return p, false
		}
		*s = append((*s)[:i], (*s)[i+1:]...)
	case *[]scholarfolio.InlineLink:
		if i >= len(*s) {
			return p, false
		}
		*s = append((*s)[:i], (*s)[i+1:]...)
	default:
		return p, false
	}
	return next, true
}

// Append adds value to the end of the slice at path. The element type
// is taken from the slice; value must decode into it.
func Append(p *scholarfolio.Profile, path Path, value any) (*scholarfolio.Profile, bool) {
	if p == nil || len(path) == 0 {
		return p, false
	}
	next := p.Clone()
	ptr, ok := resolve(next, path, true)
	if !ok {
		return p, false
	}
	switch s := ptr.(type) {
	case *[]scholarfolio.Page:
		var el scholarfolio.Page
		if !assign(&el, value) {
			return p, false
		}
		*s = append(*s, el)
	case *[]scholarfolio.Block:
		var el scholarfolio.Block
		if !assign(&el, value) {
			return p, false
		}
		*s = append(*s, el)
	case *[]scholarfolio.Item:
		var el scholarfolio.Item
		if !assign(&el, value) {
			return p, false
		}
		*s = append(*s, el)
	case *[]scholarfolio.InlineLink:
		var el scholarfolio.InlineLink
		if !assign(&el, value) {
			return p, false
		}
		*s = append(*s, el)
	default:
		return p, false
	}
	return next, true
}
