// Package render turns a profile into HTML. One renderer serves both
// surfaces: the live editor asks for ModeInteractive and gets
// click-to-select affordances on every editable node, the exporter
// asks for ModeStatic and gets the same document without them. Theme
// classes, icon glyphs, and text segmentation live here once, so the
// two outputs cannot drift apart.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/security"
)

// Mode selects the output surface.
type Mode int

const (
	// ModeInteractive wraps editable nodes in selection affordances.
	ModeInteractive Mode = iota
	// ModeStatic emits plain markup for export.
	ModeStatic
)

// Options parameterize one render pass.
type Options struct {
	Mode         Mode
	Theme        scholarfolio.ThemeID
	PrimaryColor string
	ActivePageID string
	// SearchQuery highlights matches; only honored in interactive mode.
	SearchQuery string
}

type renderer struct {
	p     *scholarfolio.Profile
	opts  Options
	theme Theme
	b     strings.Builder
}

// Page renders the full themed document for the active page: header
// with name and page navigation, the page's blocks, and the footer.
func Page(p *scholarfolio.Profile, opts Options) string {
	r := &renderer{p: p, opts: opts, theme: ThemeFor(opts.Theme)}
	active := r.activePage()
	if active == nil {
		return ""
	}

	r.b.WriteString(`<div class="` + r.theme.Container + `" ` + r.containerStyle() + `>`)
	r.header()
	r.b.WriteString(`<main>`)
	pi := p.PageIndex(active.ID)
	for bi := range active.Layout {
		r.block(&active.Layout[bi], pi, bi)
	}
	r.b.WriteString(`</main>`)
	r.footer()
	r.b.WriteString(`</div>`)
	return r.b.String()
}

// Blocks renders just the block list of the page with the given id.
// The live editor uses it for partial updates over the websocket.
func Blocks(p *scholarfolio.Profile, pageID string, opts Options) string {
	opts.ActivePageID = pageID
	r := &renderer{p: p, opts: opts, theme: ThemeFor(opts.Theme)}
	active := r.activePage()
	if active == nil {
		return ""
	}
	pi := p.PageIndex(active.ID)
	for bi := range active.Layout {
		r.block(&active.Layout[bi], pi, bi)
	}
	return r.b.String()
}

func (r *renderer) activePage() *scholarfolio.Page {
	if pg, ok := r.p.PageByID(r.opts.ActivePageID); ok {
		return pg
	}
	if len(r.p.Pages) > 0 {
		return &r.p.Pages[0]
	}
	return nil
}

func (r *renderer) interactive() bool { return r.opts.Mode == ModeInteractive }

func (r *renderer) containerStyle() string {
	var decls []string
	if tc, ok := r.p.ThemeSettings[r.opts.Theme]; ok && tc != nil && tc.BackgroundColor != "" {
		decls = append(decls, "background-color: "+html.EscapeString(tc.BackgroundColor))
	}
	switch r.opts.Theme {
	case scholarfolio.Theme1, scholarfolio.Theme6, scholarfolio.Theme8:
		decls = append(decls, "border-top-color: "+html.EscapeString(r.opts.PrimaryColor))
	case scholarfolio.Theme3:
		decls = append(decls, "border-left-color: "+html.EscapeString(r.opts.PrimaryColor))
	}
	return `style="` + strings.Join(decls, "; ") + `"`
}

// wrap emits the click-to-select affordance around inner. Static mode
// keeps the layout class but drops the contract attributes.
func (r *renderer) wrap(elementType, path, class, inner string) {
	if r.interactive() {
		r.b.WriteString(`<div class="editable relative group cursor-pointer rounded-lg transition-all ` + class +
			`" data-element-type="` + html.EscapeString(elementType) +
			`" data-path="` + html.EscapeString(path) + `">`)
		r.b.WriteString(inner)
		// badge label comes from editor CSS so text content stays
		// identical across output modes
		r.b.WriteString(`<div class="edit-badge absolute -top-4 right-0 text-white text-[9px] px-3 py-1 rounded-full opacity-0 group-hover:opacity-100 uppercase font-black z-[100] shadow-lg tracking-wider pointer-events-none"></div>`)
		r.b.WriteString(`</div>`)
		return
	}
	if class != "" {
		r.b.WriteString(`<div class="` + class + `">` + inner + `</div>`)
		return
	}
	r.b.WriteString(inner)
}

// highlight escapes text, wrapping case-insensitive matches of the
// search query in <mark>. Interactive mode only.
func (r *renderer) highlight(text string) string {
	q := r.opts.SearchQuery
	if !r.interactive() || q == "" {
		return html.EscapeString(text)
	}
	lower := strings.ToLower(text)
	match := strings.ToLower(q)
	if !strings.Contains(lower, match) {
		return html.EscapeString(text)
	}
	var b strings.Builder
	for len(lower) > 0 {
		i := strings.Index(lower, match)
		if i < 0 || i+len(match) > len(text) {
			b.WriteString(html.EscapeString(text))
			break
		}
		b.WriteString(html.EscapeString(text[:i]))
		b.WriteString(`<mark class="bg-yellow-200 text-black px-1 rounded">`)
		b.WriteString(html.EscapeString(text[i : i+len(match)]))
		b.WriteString(`</mark>`)
		text = text[i+len(match):]
		lower = lower[i+len(match):]
	}
	return b.String()
}

// text renders an item's text run: inline link segmentation first,
// then search highlighting inside each segment.
func (r *renderer) text(text string, links []scholarfolio.InlineLink) string {
	var b strings.Builder
	for _, seg := range Split(text, links) {
		if seg.Link == nil {
			b.WriteString(`<span class="content-text">` + r.highlight(seg.Text) + `</span>`)
			continue
		}
		link := seg.Link
		color := r.opts.PrimaryColor
		if link.Style != nil && link.Style.Color != "" {
			color = link.Style.Color
		}
		internal := link.LinkType == scholarfolio.LinkInternal && link.InternalPageID != ""
		real := internal || (link.URL != "" && link.URL != "#" && link.LinkType != scholarfolio.LinkNone && link.LinkType != "")
		decoration := "text-decoration: none;"
		if real {
			decoration = "text-decoration: underline; text-underline-offset: 4px;"
		}
		style := `style="color: ` + html.EscapeString(color) + `; ` + decoration + `"`
		if !real {
			b.WriteString(`<span ` + style + `>` + r.highlight(seg.Text) + `</span>`)
			continue
		}
		if internal {
			b.WriteString(`<a href="#" data-page-id="` + html.EscapeString(link.InternalPageID) + `" class="hover:opacity-70 transition-opacity" ` + style + `>` + r.highlight(seg.Text) + `</a>`)
			continue
		}
		href := security.SafeHref(link.URL)
		if link.LinkType == scholarfolio.LinkFile {
			href = security.SafeFileHref(link.URL)
		}
		b.WriteString(`<a href="` + html.EscapeString(href) + `" target="_blank" rel="noopener noreferrer" class="hover:opacity-70 transition-opacity" ` + style + `>` + r.highlight(seg.Text) + `</a>`)
	}
	return b.String()
}

func (r *renderer) header() {
	r.b.WriteString(`<header class="` + r.theme.Header + `">`)
	r.b.WriteString(`<div class="flex flex-col gap-10 w-full items-start">`)

	name := `<h1 class="text-7xl font-black tracking-tighter leading-none content-text" ` + styleAttr(r.p.Name.Style) + `>` +
		r.text(r.p.Name.Text, r.p.Name.InlineLinks) + `</h1>`
	r.wrap("name", "name", "", name)

	r.b.WriteString(`<nav class="flex flex-wrap justify-start gap-12 w-full">`)
	for _, pg := range r.p.Pages {
		activeClass := " opacity-20 hover:opacity-100"
		styleColor := "inherit"
		underline := ""
		if pg.ID == r.opts.ActivePageID {
			activeClass = ""
			styleColor = r.opts.PrimaryColor
			underline = `<div class="absolute bottom-0 left-0 w-full rounded-full h-2" style="background-color: ` + html.EscapeString(r.opts.PrimaryColor) + `"></div>`
		}
		r.b.WriteString(`<button data-page-id="` + html.EscapeString(pg.ID) +
			`" class="text-xs font-black uppercase tracking-[0.4em] transition-all relative py-2` + activeClass +
			`" style="color: ` + html.EscapeString(styleColor) + `">` +
			html.EscapeString(pg.Title) + underline + `</button>`)
	}
	r.b.WriteString(`</nav></div></header>`)
}

func (r *renderer) footer() {
	r.b.WriteString(`<footer class="mt-64 pt-24 border-t-2 border-slate-100 text-center opacity-30">` +
		`<p class="text-[10px] font-black uppercase tracking-[0.5em] font-sans">SCHOLARLY ARCHIVE &bull; ` +
		strconv.Itoa(time.Now().Year()) + ` ` + html.EscapeString(strings.ToUpper(r.p.Name.Text)) +
		`</p></footer>`)
}

func widthClass(b *scholarfolio.Block) string {
	if b.LayoutConfig == nil {
		return "max-w-6xl mx-auto"
	}
	switch b.LayoutConfig.Width {
	case scholarfolio.WidthNarrow:
		return "max-w-3xl mx-auto"
	case scholarfolio.WidthMedium:
		return "max-w-4xl mx-auto"
	case scholarfolio.WidthFull:
		return "w-full"
	}
	return "max-w-6xl mx-auto"
}

func columns(b *scholarfolio.Block) int {
	if b.LayoutConfig == nil || b.LayoutConfig.Columns < 1 {
		return 1
	}
	return b.LayoutConfig.Columns
}

func (r *renderer) sectionHeading(title scholarfolio.Item, path string) {
	inner := `<h2 class="` + r.theme.SectionHeading + `" ` + styleAttr(title.Style) + `>` +
		r.text(title.Text, title.InlineLinks) + `</h2>`
	r.wrap("title", path, "", inner)
}

func (r *renderer) block(b *scholarfolio.Block, pi, bi int) {
	path := fmt.Sprintf("pages.%d.layout.%d", pi, bi)
	r.b.WriteString(`<div class="` + widthClass(b) + ` mb-28">`)
	switch b.Type {
	case scholarfolio.BlockBioHero:
		r.bioHero(b, path)
	case scholarfolio.BlockGroupPhoto:
		r.groupPhoto(b, path)
	case scholarfolio.BlockLabTeam:
		r.labTeam(b, path)
	case scholarfolio.BlockContactGrid:
		r.contactGrid(b, path)
	default:
		r.list(b, path)
	}
	r.b.WriteString(`</div>`)
}

func (r *renderer) bioHero(b *scholarfolio.Block, path string) {
	r.b.WriteString(`<div class="flex flex-col lg:flex-row gap-16 items-start mb-28">`)
	if len(b.Items) > 0 {
		it := b.Items[0]
		photo := `<img src="` + html.EscapeString(security.SafeImageSrc(it.Image)) + `" class="w-64 h-80 object-cover shadow-2xl border border-slate-100 p-1 bg-white rounded-2xl" alt="photo">`
		r.wrap("photo", path+".items.0", "shrink-0", photo)
	}
	r.b.WriteString(`<div class="flex-1 space-y-6">`)

	heading := `<h1 class="text-3xl tracking-tight text-slate-900 content-text" ` + styleAttr(b.Title.Style) + `>` +
		r.text(b.Title.Text, b.Title.InlineLinks) + `</h1>`
	r.wrap("text", path+".title", "", heading)

	if len(b.Items) > 0 {
		it := b.Items[0]
		var bio strings.Builder
		bio.WriteString(`<div class="space-y-4"><div class="text-lg leading-relaxed text-slate-700 content-text" ` + styleAttr(it.Style) + `>`)
		bio.WriteString(r.text(it.Text, it.InlineLinks))
		bio.WriteString(`</div>`)
		if it.Subtext != "" {
			bio.WriteString(`<div class="text-base leading-relaxed text-slate-500 italic opacity-80 content-text">` +
				r.text(it.Subtext, it.InlineLinks) + `</div>`)
		}
		bio.WriteString(`</div>`)
		r.wrap("bio", path+".items.0", "", bio.String())
	}
	r.b.WriteString(`</div></div>`)
}

func (r *renderer) groupPhoto(b *scholarfolio.Block, path string) {
	r.sectionHeading(b.Title, path+".title")
	r.b.WriteString(`<div class="grid grid-cols-1 md:grid-cols-` + strconv.Itoa(columns(b)) + ` gap-8">`)
	for i, it := range b.Items {
		itemPath := fmt.Sprintf("%s.items.%d", path, i)
		r.b.WriteString(`<div class="flex flex-col">`)
		aspect := "16/9"
		if b.LayoutConfig != nil && b.LayoutConfig.AspectRatio != "" {
			aspect = b.LayoutConfig.AspectRatio
		}
		// An explicit item height wins; the aspect ratio is the fallback.
		sizing := `aspect-ratio: ` + html.EscapeString(aspect)
		if it.Style != nil && it.Style.Height != "" {
			sizing = `height: ` + html.EscapeString(cssLen(it.Style.Height))
		}
		photo := `<img src="` + html.EscapeString(security.SafeImageSrc(it.Image)) + `" class="w-full object-cover" style="` + sizing + `" alt="research">`
		r.wrap("photo", itemPath, "w-full overflow-hidden rounded-[2rem] shadow-xl border border-slate-100", photo)
		if it.Text != "" || it.Subtext != "" {
			var cap strings.Builder
			cap.WriteString(`<div class="mt-6 text-center px-4 max-w-2xl mx-auto">`)
			if it.Text != "" {
				cap.WriteString(`<div class="text-slate-800 font-bold text-lg" ` + styleAttr(it.Style) + `>` + r.text(it.Text, it.InlineLinks) + `</div>`)
			}
			if it.Subtext != "" {
				cap.WriteString(`<p class="text-slate-500 text-sm mt-2 italic leading-relaxed">` + r.text(it.Subtext, it.InlineLinks) + `</p>`)
			}
			cap.WriteString(`</div>`)
			r.wrap("item", itemPath, "", cap.String())
		}
		r.b.WriteString(`</div>`)
	}
	r.b.WriteString(`</div>`)
}

func (r *renderer) labTeam(b *scholarfolio.Block, path string) {
	r.sectionHeading(b.Title, path+".title")
	r.b.WriteString(`<div class="grid grid-cols-1 md:grid-cols-2 gap-8 lg:gap-12 items-stretch">`)
	for i, it := range b.Items {
		var card strings.Builder
		card.WriteString(`<div class="flex flex-row items-center gap-6 p-4 md:p-6 bg-white rounded-3xl border border-slate-100 shadow-sm h-full">`)
		if it.Image != "" {
			card.WriteString(`<div class="w-24 h-24 md:w-32 md:h-32 shrink-0 rounded-2xl overflow-hidden shadow-inner border border-slate-50">` +
				`<img src="` + html.EscapeString(security.SafeImageSrc(it.Image)) + `" class="w-full h-full object-cover" alt="` + html.EscapeString(it.Text) + `"></div>`)
		}
		card.WriteString(`<div class="flex-1 min-w-0"><div class="text-lg md:text-xl font-bold text-slate-800 leading-tight" ` + styleAttr(it.Style) + `>` +
			r.text(it.Text, it.InlineLinks) + `</div>`)
		if it.Subtext != "" {
			card.WriteString(`<div class="text-sm md:text-base text-slate-500 mt-2 leading-relaxed content-text">` + r.text(it.Subtext, it.InlineLinks) + `</div>`)
		}
		card.WriteString(`</div></div>`)
		r.wrap("member", fmt.Sprintf("%s.items.%d", path, i), "h-full", card.String())
	}
	r.b.WriteString(`</div>`)
}

func (r *renderer) contactGrid(b *scholarfolio.Block, path string) {
	r.sectionHeading(b.Title, path+".title")
	r.b.WriteString(`<div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-6 items-stretch">`)
	for i, it := range b.Items {
		var card strings.Builder
		card.WriteString(`<div class="p-6 bg-white border border-slate-100 rounded-[32px] flex flex-col items-center text-center gap-4 shadow-sm h-full">`)
		card.WriteString(`<div class="w-14 h-14 rounded-2xl flex items-center justify-center overflow-hidden shrink-0 bg-slate-50 text-slate-600 border border-slate-50" style="border-color: ` +
			html.EscapeString(r.opts.PrimaryColor) + `40">` + iconHTML(it) + `</div>`)
		card.WriteString(`<div class="flex-1 flex flex-col justify-center">`)
		card.WriteString(`<p class="text-[9px] font-black uppercase tracking-widest text-slate-400 mb-1">` + r.text(it.Text, it.InlineLinks) + `</p>`)
		card.WriteString(`<p class="text-sm font-bold break-words leading-tight text-slate-800 content-text" ` + styleAttr(it.Style) + `>` + r.text(it.Subtext, it.InlineLinks) + `</p>`)
		card.WriteString(`</div></div>`)
		r.wrap("item", fmt.Sprintf("%s.items.%d", path, i), "h-full", card.String())
	}
	r.b.WriteString(`</div>`)
}

func (r *renderer) list(b *scholarfolio.Block, path string) {
	r.sectionHeading(b.Title, path+".title")
	r.b.WriteString(`<div class="grid grid-cols-1 md:grid-cols-` + strconv.Itoa(columns(b)) + ` gap-10">`)
	for i, it := range b.Items {
		var row strings.Builder
		row.WriteString(`<div class="flex flex-col md:flex-row gap-6 md:gap-16 pb-10 border-b border-slate-100 last:border-0 items-start">`)
		if it.Date != "" {
			row.WriteString(`<div class="w-20 shrink-0 font-black text-xl text-slate-300">` + html.EscapeString(it.Date) + `</div>`)
		}
		if it.Image != "" {
			row.WriteString(`<div class="w-32 h-32 shrink-0 overflow-hidden rounded-xl shadow-lg border border-slate-100">` +
				`<img src="` + html.EscapeString(security.SafeImageSrc(it.Image)) + `" class="w-full h-full object-cover" alt="thumbnail"></div>`)
		}
		row.WriteString(`<div class="flex-1"><div class="text-xl text-slate-800 content-text" ` + styleAttr(it.Style) + `>` + r.text(it.Text, it.InlineLinks) + `</div>`)
		if it.Subtext != "" {
			row.WriteString(`<p class="text-base mt-2 leading-relaxed text-slate-500 font-medium content-text">` + r.text(it.Subtext, it.InlineLinks) + `</p>`)
		}
		row.WriteString(`</div></div>`)
		r.wrap("item", fmt.Sprintf("%s.items.%d", path, i), "", row.String())
	}
	r.b.WriteString(`</div>`)
}
