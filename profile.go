// Package scholarfolio defines the document model for an academic
// homepage: a Profile containing pages, typed content blocks, items,
// and inline link segments. The model is mutated copy-on-write through
// internal/docpath and rendered by internal/render.
package scholarfolio

// ThemeID identifies one of the built-in visual themes ("theme-1" .. "theme-8").
type ThemeID string

// Built-in themes. Each maps to a style descriptor in internal/render.
const (
	Theme1 ThemeID = "theme-1"
	Theme2 ThemeID = "theme-2"
	Theme3 ThemeID = "theme-3"
	Theme4 ThemeID = "theme-4"
	Theme5 ThemeID = "theme-5"
	Theme6 ThemeID = "theme-6"
	Theme7 ThemeID = "theme-7"
	Theme8 ThemeID = "theme-8"
)

// ThemeIDs lists the selectable themes in display order.
func ThemeIDs() []ThemeID {
	return []ThemeID{Theme1, Theme2, Theme3, Theme4, Theme5, Theme6, Theme7, Theme8}
}

// ValidThemeID reports whether id names one of the built-in themes.
func ValidThemeID(id ThemeID) bool {
	for _, t := range ThemeIDs() {
		if t == id {
			return true
		}
	}
	return false
}

// BlockType selects a block's item defaults at creation time and its
// rendering branch thereafter. Immutable once the block exists.
type BlockType string

const (
	BlockBioHero             BlockType = "bio-hero"
	BlockList                BlockType = "list"
	BlockImageCard           BlockType = "image-card"
	BlockEducation           BlockType = "education"
	BlockPublications        BlockType = "publications"
	BlockResearchInterests   BlockType = "research-interests"
	BlockContactGrid         BlockType = "contact-grid"
	BlockLabTeam             BlockType = "lab-team"
	BlockLabSummary          BlockType = "lab-summary"
	BlockStatsGrid           BlockType = "stats-grid"
	BlockActivities          BlockType = "activities"
	BlockEducationEmployment BlockType = "education-employment"
	BlockJoinLab             BlockType = "join-lab"
	BlockAboutMe             BlockType = "about-me"
	BlockResources           BlockType = "resources"
	BlockFunding             BlockType = "funding"
	BlockEditorialServices   BlockType = "editorial-services"
	BlockImpactOutreach      BlockType = "impact-outreach"
	BlockTechnicalSkills     BlockType = "technical-skills"
	BlockGroupPhoto          BlockType = "group-photo"
	BlockGroupSummary        BlockType = "group-summary"
	BlockCustom              BlockType = "custom"
)

// LinkType classifies how an inline link segment activates.
type LinkType string

const (
	LinkNone     LinkType = "none"     // styled span, not clickable
	LinkExternal LinkType = "external" // opens URL in a new context
	LinkInternal LinkType = "internal" // switches to InternalPageID
	LinkFile     LinkType = "file"     // URL holds an embedded data URI
)

// IconName identifies a built-in icon glyph, or "custom" to defer to
// the item's CustomIcon data URI.
type IconName string

const (
	IconNone     IconName = "none"
	IconEmail    IconName = "email"
	IconGitHub   IconName = "github"
	IconORCID    IconName = "orcid"
	IconScholar  IconName = "scholar"
	IconTwitter  IconName = "twitter"
	IconWeibo    IconName = "weibo"
	IconZhihu    IconName = "zhihu"
	IconBilibili IconName = "bilibili"
	IconLocation IconName = "location"
	IconCustom   IconName = "custom"
)

// WidthClass controls a block's maximum content width.
type WidthClass string

const (
	WidthNarrow WidthClass = "narrow"
	WidthMedium WidthClass = "medium"
	WidthWide   WidthClass = "wide"
	WidthFull   WidthClass = "full"
)

// ElementStyle holds per-node typography and dimension overrides.
// All fields are optional; empty means "inherit".
type ElementStyle struct {
	FontSize        string  `json:"fontSize,omitempty"`
	Color           string  `json:"color,omitempty"`
	FontFamily      string  `json:"fontFamily,omitempty"` // "sans", "serif", "mono", "times", "georgia"
	FontWeight      string  `json:"fontWeight,omitempty"`
	FontStyle       string  `json:"fontStyle,omitempty"` // "normal" or "italic"
	TextDecoration  string  `json:"textDecoration,omitempty"`
	TextAlign       string  `json:"textAlign,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	BorderRadius    string  `json:"borderRadius,omitempty"`
	Padding         string  `json:"padding,omitempty"`
	Opacity         string  `json:"opacity,omitempty"`
	Width           string  `json:"width,omitempty"`
	Height          string  `json:"height,omitempty"`
	LineHeight      string  `json:"lineHeight,omitempty"`
	Scale           float64 `json:"scale,omitempty"`
}

// Clone returns a deep copy, or nil for a nil style.
func (s *ElementStyle) Clone() *ElementStyle {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// InlineLink styles and/or links a sub-range of its owner's text,
// matched by literal substring. Links are applied in list order;
// first match wins per resulting segment.
type InlineLink struct {
	ID             string        `json:"id"`
	MatchText      string        `json:"matchText"`
	URL            string        `json:"url,omitempty"`
	LinkType       LinkType      `json:"linkType,omitempty"`
	InternalPageID string        `json:"internalPageId,omitempty"`
	Style          *ElementStyle `json:"style,omitempty"`
}

// Clone returns a deep copy.
func (l InlineLink) Clone() InlineLink {
	c := l
	c.Style = l.Style.Clone()
	return c
}

// Item is the atomic content unit inside a block: text, subtext, date,
// image, icon, and the inline link segments scoped to its text fields.
type Item struct {
	ID             string        `json:"id"`
	Text           string        `json:"text,omitempty"`
	Subtext        string        `json:"subtext,omitempty"`
	URL            string        `json:"url,omitempty"`
	LinkType       LinkType      `json:"linkType,omitempty"`
	InternalPageID string        `json:"internalPageId,omitempty"`
	InlineLinks    []InlineLink  `json:"inlineLinks,omitempty"`
	Style          *ElementStyle `json:"style,omitempty"`
	Label          string        `json:"label,omitempty"`
	Image          string        `json:"image,omitempty"` // URL or data URI
	Date           string        `json:"date,omitempty"`
	Icon           IconName      `json:"icon,omitempty"`
	CustomIcon     string        `json:"customIcon,omitempty"` // data URI, used when Icon == IconCustom
}

// Clone returns a deep copy.
func (it Item) Clone() Item {
	c := it
	c.Style = it.Style.Clone()
	if it.InlineLinks != nil {
		c.InlineLinks = make([]InlineLink, len(it.InlineLinks))
		for i, l := range it.InlineLinks {
			c.InlineLinks[i] = l.Clone()
		}
	}
	return c
}

// LayoutConfig holds block-level layout settings.
type LayoutConfig struct {
	Columns         int        `json:"columns,omitempty"`
	ShowImage       bool       `json:"showImage,omitempty"`
	ImagePosition   string     `json:"imagePosition,omitempty"` // "left", "right", "top"
	Width           WidthClass `json:"width,omitempty"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	AspectRatio     string     `json:"aspectRatio,omitempty"`
	ItemHeight      string     `json:"itemHeight,omitempty"`
}

// Clone returns a deep copy, or nil for a nil config.
func (c *LayoutConfig) Clone() *LayoutConfig {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Block is a typed section: a title item plus an ordered item list.
// Type never changes after creation.
type Block struct {
	ID           string        `json:"id"`
	Type         BlockType     `json:"type"`
	Title        Item          `json:"title"`
	Items        []Item        `json:"items"`
	LayoutConfig *LayoutConfig `json:"layoutConfig,omitempty"`
}

// Clone returns a deep copy.
func (b Block) Clone() Block {
	c := b
	c.Title = b.Title.Clone()
	c.LayoutConfig = b.LayoutConfig.Clone()
	if b.Items != nil {
		c.Items = make([]Item, len(b.Items))
		for i, it := range b.Items {
			c.Items[i] = it.Clone()
		}
	}
	return c
}

// Page is an independently navigable unit with an ordered block layout.
type Page struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Layout []Block `json:"layout"`
}

// Clone returns a deep copy.
func (p Page) Clone() Page {
	c := p
	if p.Layout != nil {
		c.Layout = make([]Block, len(p.Layout))
		for i, b := range p.Layout {
			c.Layout[i] = b.Clone()
		}
	}
	return c
}

// ThemeSettings holds per-theme color overrides. Stored by pointer in
// Profile so path mutations can address individual fields in place.
type ThemeSettings struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	HeaderColor     string `json:"headerColor,omitempty"`
	SidebarColor    string `json:"sidebarColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
}

// Contact groups the profile-level contact email and link items.
type Contact struct {
	Email Item   `json:"email"`
	Links []Item `json:"links,omitempty"`
}

// Clone returns a deep copy.
func (c Contact) Clone() Contact {
	cp := c
	cp.Email = c.Email.Clone()
	if c.Links != nil {
		cp.Links = make([]Item, len(c.Links))
		for i, it := range c.Links {
			cp.Links[i] = it.Clone()
		}
	}
	return cp
}

// Profile is the whole document being edited. Exactly one Profile is
// live at a time; it is replaced wholesale on import and mutated
// copy-on-write on edit.
type Profile struct {
	Subdomain     string                     `json:"subdomain"`
	Name          Item                       `json:"name"`
	Pages         []Page                     `json:"pages"`
	Contact       Contact                    `json:"contact,omitempty"`
	ThemeSettings map[ThemeID]*ThemeSettings `json:"themeSettings,omitempty"`
}

// Clone returns a deep copy. Mutations always operate on a clone so
// history snapshots stay immutable.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := &Profile{
		Subdomain: p.Subdomain,
		Name:      p.Name.Clone(),
		Contact:   p.Contact.Clone(),
	}
	if p.Pages != nil {
		c.Pages = make([]Page, len(p.Pages))
		for i, pg := range p.Pages {
			c.Pages[i] = pg.Clone()
		}
	}
	if p.ThemeSettings != nil {
		c.ThemeSettings = make(map[ThemeID]*ThemeSettings, len(p.ThemeSettings))
		for k, v := range p.ThemeSettings {
			if v == nil {
				continue
			}
			ts := *v
			c.ThemeSettings[k] = &ts
		}
	}
	return c
}

// PageByID returns the page with the given id.
func (p *Profile) PageByID(id string) (*Page, bool) {
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			return &p.Pages[i], true
		}
	}
	return nil, false
}

// PageIndex returns the index of the page with the given id, or -1.
func (p *Profile) PageIndex(id string) int {
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			return i
		}
	}
	return -1
}
