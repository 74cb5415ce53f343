package render

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

// Font is a selectable font family for the editor chrome.
type Font struct {
	Name  string
	Key   string
	Value string
}

// Fonts lists the families the style editor offers. Keys are what
// ElementStyle.FontFamily stores.
func Fonts() []Font {
	return []Font{
		{Name: "Inter (Sans)", Key: "sans", Value: "Inter, sans-serif"},
		{Name: "Lora (Serif)", Key: "serif", Value: "Lora, serif"},
		{Name: "Times New Roman", Key: "times", Value: `"Times New Roman", Times, serif`},
		{Name: "Georgia", Key: "georgia", Value: "Georgia, serif"},
		{Name: "JetBrains Mono", Key: "mono", Value: "JetBrains Mono, monospace"},
	}
}

var fontFamilies = map[string]string{
	"sans":    "Inter, sans-serif",
	"serif":   "Lora, serif",
	"times":   `"Times New Roman", Times, serif`,
	"georgia": "Georgia, serif",
	"mono":    "JetBrains Mono, monospace",
}

// PaletteColor is one accent color choice.
type PaletteColor struct {
	Name      string
	Primary   string
	Secondary string
	Bg        string
}

// PaletteGroup is a named set of accent colors.
type PaletteGroup struct {
	Group  string
	Colors []PaletteColor
}

// Palettes lists the accent color choices offered by the editor. The
// first entry's first color is the default primary color.
func Palettes() []PaletteGroup {
	return []PaletteGroup{
		{Group: "Academic Classical", Colors: []PaletteColor{
			{Name: "Stanford Red", Primary: "#8C1515", Secondary: "#B1040E", Bg: "#fdf7f7"},
			{Name: "Yale Blue", Primary: "#00356B", Secondary: "#286dc0", Bg: "#f0f4f8"},
			{Name: "Harvard Crimson", Primary: "#A51C30", Secondary: "#ed1b34", Bg: "#fcf2f3"},
			{Name: "Oxford Navy", Primary: "#002147", Secondary: "#00356B", Bg: "#f4f7f9"},
			{Name: "Princeton Orange", Primary: "#E77500", Secondary: "#000000", Bg: "#fffaf0"},
			{Name: "Tsinghua Purple", Primary: "#660874", Secondary: "#A68EA3", Bg: "#faf5fb"},
			{Name: "UPenn Blue", Primary: "#011F5B", Secondary: "#990000", Bg: "#f1f4f9"},
			{Name: "Deep Brown", Primary: "#4B2E1D", Secondary: "#6D4C41", Bg: "#f7f4f2"},
			{Name: "Charcoal Grey", Primary: "#333333", Secondary: "#545454", Bg: "#f5f5f5"},
			{Name: "Academic Black", Primary: "#0A0A0A", Secondary: "#2C2C2C", Bg: "#f0f0f0"},
			{Name: "Dartmouth Green", Primary: "#00693E", Secondary: "#1E4D2B", Bg: "#f5f9f6"},
			{Name: "Chicago Maroon", Primary: "#800000", Secondary: "#A00000", Bg: "#fdf2f2"},
		}},
		{Group: "Morandi Palette", Colors: []PaletteColor{
			{Name: "Muted Lavender", Primary: "#9B89B3", Secondary: "#B7A9C9", Bg: "#f9f8fb"},
			{Name: "Dusty Rose", Primary: "#B38B8B", Secondary: "#D4ABAB", Bg: "#fcf8f8"},
			{Name: "Slate Blue", Primary: "#7A8DA1", Secondary: "#A1B3C6", Bg: "#f9fbfc"},
			{Name: "Foggy Teal", Primary: "#7A9A9B", Secondary: "#9AB7B8", Bg: "#f7fbfc"},
			{Name: "Sage Green", Primary: "#8F9B8B", Secondary: "#ADB9A9", Bg: "#f8f9f8"},
			{Name: "Silver Pine", Primary: "#6B7B61", Secondary: "#8B9B81", Bg: "#f6f8f5"},
			{Name: "Ash Purple", Primary: "#7D5A7A", Secondary: "#A68EA3", Bg: "#fcfafc"},
			{Name: "Muted Olive", Primary: "#7D7D5A", Secondary: "#9E9E7A", Bg: "#f9f9f5"},
			{Name: "Terracotta Sand", Primary: "#A68B7D", Secondary: "#C7AC9E", Bg: "#faf8f7"},
			{Name: "Driftwood Brown", Primary: "#7D6A5A", Secondary: "#A38F7D", Bg: "#f9f7f5"},
			{Name: "Muted Sky", Primary: "#8BA9B3", Secondary: "#A9C7D4", Bg: "#f8fbfc"},
			{Name: "Warm Stone", Primary: "#B3A68B", Secondary: "#D4C7A9", Bg: "#fafaf8"},
		}},
	}
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// cssLen treats bare numbers as pixel values.
func cssLen(v string) string {
	if digitsOnly.MatchString(v) {
		return v + "px"
	}
	return v
}

// styleAttr builds an inline style attribute from an element style.
// Text always keeps its line breaks, so white-space comes first even
// for a nil style.
func styleAttr(s *scholarfolio.ElementStyle) string {
	var b strings.Builder
	b.WriteString(`style="white-space: pre-wrap;`)
	if s != nil {
		writeDecls(&b, s)
	}
	b.WriteString(`"`)
	return b.String()
}

func writeDecls(b *strings.Builder, s *scholarfolio.ElementStyle) {
	put := func(prop, v string) {
		if v != "" {
			b.WriteString(" " + prop + ": " + html.EscapeString(v) + ";")
		}
	}
	if s.FontSize != "" {
		put("font-size", cssLen(s.FontSize))
	}
	put("font-weight", s.FontWeight)
	put("font-style", s.FontStyle)
	put("text-decoration", s.TextDecoration)
	put("color", s.Color)
	if fam, ok := fontFamilies[s.FontFamily]; ok {
		put("font-family", fam)
	}
	put("text-align", s.TextAlign)
	put("background-color", s.BackgroundColor)
	put("border-radius", s.BorderRadius)
	put("padding", s.Padding)
	put("opacity", s.Opacity)
	put("width", s.Width)
	put("height", s.Height)
	if s.LineHeight != "" {
		v := s.LineHeight
		// small bare numbers are unitless multipliers, larger ones pixels
		if n, err := strconv.Atoi(v); err == nil && n > 4 {
			v += "px"
		}
		put("line-height", v)
	}
}
