package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// textContent strips markup, leaving the rendered text sequence.
func textContent(s string) string {
	out := tagPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(out), " ")
}

func testProfile(t *testing.T) *scholarfolio.Profile {
	t.Helper()
	ids := &scholarfolio.SequenceSource{}
	p := scholarfolio.DefaultProfile(ids)
	for _, bt := range []scholarfolio.BlockType{
		scholarfolio.BlockContactGrid,
		scholarfolio.BlockLabTeam,
		scholarfolio.BlockGroupPhoto,
		scholarfolio.BlockTechnicalSkills,
		scholarfolio.BlockEducationEmployment,
		scholarfolio.BlockFunding,
		scholarfolio.BlockCustom,
	} {
		p.Pages[0].Layout = append(p.Pages[0].Layout, scholarfolio.NewBlock(ids, bt))
	}
	return p
}

func opts(mode Mode, p *scholarfolio.Profile) Options {
	return Options{
		Mode:         mode,
		Theme:        scholarfolio.Theme1,
		PrimaryColor: "#8C1515",
		ActivePageID: p.Pages[0].ID,
	}
}

func TestModeParityAcrossBlockTypes(t *testing.T) {
	p := testProfile(t)

	live := Page(p, opts(ModeInteractive, p))
	static := Page(p, opts(ModeStatic, p))

	assert.Equal(t, textContent(static), textContent(live))
}

func TestParityPerTheme(t *testing.T) {
	p := testProfile(t)
	for _, theme := range scholarfolio.ThemeIDs() {
		o := opts(ModeInteractive, p)
		o.Theme = theme
		live := textContent(Page(p, o))
		o.Mode = ModeStatic
		static := textContent(Page(p, o))
		assert.Equal(t, static, live, "theme %s", theme)
	}
}

func TestInteractiveAffordances(t *testing.T) {
	p := testProfile(t)

	live := Page(p, opts(ModeInteractive, p))
	assert.Contains(t, live, `data-element-type="name"`)
	assert.Contains(t, live, `data-path="pages.0.layout.0.title"`)
	assert.Contains(t, live, `data-path="pages.0.layout.0.items.0"`)

	static := Page(p, opts(ModeStatic, p))
	assert.NotContains(t, static, "data-element-type")
	assert.NotContains(t, static, "data-path")
}

func TestSearchHighlightLiveOnly(t *testing.T) {
	p := testProfile(t)

	o := opts(ModeInteractive, p)
	o.SearchQuery = "computer"
	live := Page(p, o)
	assert.Contains(t, live, "<mark")

	o.Mode = ModeStatic
	static := Page(p, o)
	assert.NotContains(t, static, "<mark")

	// highlighting must not change the text sequence
	o.Mode = ModeInteractive
	assert.Equal(t, textContent(static), textContent(live))
}

func TestInternalLinkEmitsPageTarget(t *testing.T) {
	ids := &scholarfolio.SequenceSource{}
	p := scholarfolio.DefaultProfile(ids)
	p.Pages = append(p.Pages, scholarfolio.NewPage(ids))
	target := p.Pages[1].ID
	p.Pages[0].Layout[0].Items[0].InlineLinks = []scholarfolio.InlineLink{{
		ID: "l1", MatchText: "boundaries", LinkType: scholarfolio.LinkInternal, InternalPageID: target,
	}}

	out := Page(p, opts(ModeStatic, p))
	assert.Contains(t, out, `data-page-id="`+target+`"`)
	assert.Contains(t, out, "text-decoration: underline")
}

func TestFileLinkKeepsDataURI(t *testing.T) {
	p := testProfile(t)
	uri := "data:application/pdf;base64,JVBERi0xLjQ="
	p.Pages[0].Layout[0].Items[0].InlineLinks = []scholarfolio.InlineLink{{
		ID: "l1", MatchText: "boundaries", LinkType: scholarfolio.LinkFile, URL: uri,
	}}

	out := Page(p, opts(ModeStatic, p))
	assert.Contains(t, out, `href="`+uri+`"`)
	assert.NotContains(t, out, `href="#">boundaries`)
}

func TestFileLinkBlocksExecutableTypes(t *testing.T) {
	p := testProfile(t)
	p.Pages[0].Layout[0].Items[0].InlineLinks = []scholarfolio.InlineLink{{
		ID: "l1", MatchText: "boundaries", LinkType: scholarfolio.LinkFile,
		URL: "data:text/html,<script>alert(1)</script>",
	}}

	out := Page(p, opts(ModeStatic, p))
	assert.NotContains(t, out, "data:text/html")
}

func TestGroupPhotoItemHeightOverridesAspect(t *testing.T) {
	ids := &scholarfolio.SequenceSource{}
	p := scholarfolio.DefaultProfile(ids)
	b := scholarfolio.NewBlock(ids, scholarfolio.BlockGroupPhoto)
	require.NotEmpty(t, b.Items)
	b.Items[0].Style = &scholarfolio.ElementStyle{Height: "320"}
	p.Pages[0].Layout = append(p.Pages[0].Layout, b)

	out := Page(p, opts(ModeStatic, p))
	assert.Contains(t, out, `style="height: 320px"`)
	assert.NotContains(t, out, `style="height: 320px; aspect-ratio`)
}

func TestGroupPhotoAspectFallback(t *testing.T) {
	ids := &scholarfolio.SequenceSource{}
	p := scholarfolio.DefaultProfile(ids)
	b := scholarfolio.NewBlock(ids, scholarfolio.BlockGroupPhoto)
	b.LayoutConfig.AspectRatio = "4/3"
	p.Pages[0].Layout = append(p.Pages[0].Layout, b)

	out := Page(p, opts(ModeStatic, p))
	assert.Contains(t, out, `style="aspect-ratio: 4/3"`)
}

func TestUnlinkedStyledSegmentIsSpan(t *testing.T) {
	p := testProfile(t)
	p.Pages[0].Layout[0].Items[0].InlineLinks = []scholarfolio.InlineLink{{
		ID: "l1", MatchText: "boundaries", LinkType: scholarfolio.LinkNone,
		Style: &scholarfolio.ElementStyle{Color: "#00693E"},
	}}

	out := Page(p, opts(ModeStatic, p))
	assert.Contains(t, out, `color: #00693E; text-decoration: none;`)
	assert.NotContains(t, out, `<a href="#" `)
}

func TestUnknownThemeFallsBack(t *testing.T) {
	p := testProfile(t)
	o := opts(ModeStatic, p)
	o.Theme = "theme-99"

	out := Page(p, o)
	require.NotEmpty(t, out)
	// fallback theme draws the accent tick before section headings
	assert.Contains(t, out, ThemeFor("theme-99").Container)
}

func TestBlocksRendersOnlyLayout(t *testing.T) {
	p := testProfile(t)
	out := Blocks(p, p.Pages[0].ID, opts(ModeStatic, p))
	assert.NotContains(t, out, "<header")
	assert.NotContains(t, out, "<footer")
	assert.Contains(t, out, "Contact Information")
}

func TestEscaping(t *testing.T) {
	p := testProfile(t)
	p.Name.Text = `<script>alert("x")</script>`

	out := Page(p, opts(ModeStatic, p))
	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestStyleAttr(t *testing.T) {
	assert.Equal(t, `style="white-space: pre-wrap;"`, styleAttr(nil))

	s := &scholarfolio.ElementStyle{FontSize: "18", FontFamily: "serif", LineHeight: "28", Color: "#111"}
	attr := styleAttr(s)
	assert.Contains(t, attr, "font-size: 18px;")
	assert.Contains(t, attr, "font-family: Lora, serif;")
	assert.Contains(t, attr, "line-height: 28px;")
	assert.Contains(t, attr, "color: #111;")

	s = &scholarfolio.ElementStyle{LineHeight: "1.5"}
	assert.Contains(t, styleAttr(s), "line-height: 1.5;")
}

func TestIconHTML(t *testing.T) {
	assert.Contains(t, iconHTML(scholarfolio.Item{Icon: scholarfolio.IconGitHub}), "<svg")
	assert.Empty(t, iconHTML(scholarfolio.Item{Icon: scholarfolio.IconNone}))
	assert.Contains(t, iconHTML(scholarfolio.Item{Icon: "mastodon"}), "MAST")
	assert.Contains(t, iconHTML(scholarfolio.Item{Icon: scholarfolio.IconCustom, CustomIcon: "data:image/png;base64,x"}), `img src="data:image/png;base64,x"`)
	assert.Contains(t, iconHTML(scholarfolio.Item{Image: "https://example.com/a.png"}), `img src="https://example.com/a.png"`)
}
