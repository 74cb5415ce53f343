// Package mdimport converts a Markdown document, typically an academic
// CV, into a page. The first level-1 heading becomes the page title,
// each level-2 heading opens a section block, and paragraphs or list
// entries under it become the block's items.
package mdimport

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

// blockTypeFor maps a section heading to the block type whose layout
// fits it best. Unrecognized headings become custom sections.
func blockTypeFor(heading string) scholarfolio.BlockType {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "education") || strings.Contains(h, "employment"):
		return scholarfolio.BlockEducationEmployment
	case strings.Contains(h, "skill"):
		return scholarfolio.BlockTechnicalSkills
	case strings.Contains(h, "contact"):
		return scholarfolio.BlockContactGrid
	case strings.Contains(h, "funding") || strings.Contains(h, "grant"):
		return scholarfolio.BlockFunding
	case strings.Contains(h, "team") || strings.Contains(h, "member"):
		return scholarfolio.BlockLabTeam
	case strings.Contains(h, "publication"):
		return scholarfolio.BlockPublications
	case strings.Contains(h, "about"):
		return scholarfolio.BlockAboutMe
	}
	return scholarfolio.BlockCustom
}

// Import parses src and builds a page. Markdown with no headings still
// yields a page with one untitled section holding the text.
func Import(src []byte, ids scholarfolio.IDSource) (scholarfolio.Page, error) {
	if ids == nil {
		ids = scholarfolio.UUIDSource{}
	}
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	page := scholarfolio.Page{ID: ids.NewID("p"), Title: "Imported Page", Layout: []scholarfolio.Block{}}
	var current *scholarfolio.Block

	flush := func() {
		if current != nil {
			page.Layout = append(page.Layout, *current)
			current = nil
		}
	}
	open := func(title string) {
		flush()
		b := scholarfolio.Block{
			ID:           ids.NewID("b"),
			Type:         blockTypeFor(title),
			Title:        scholarfolio.Item{ID: ids.NewID("t"), Text: title},
			Items:        []scholarfolio.Item{},
			LayoutConfig: &scholarfolio.LayoutConfig{Width: scholarfolio.WidthWide, Columns: 1},
		}
		current = &b
	}
	addItem := func(line string) {
		if line == "" {
			return
		}
		if current == nil {
			open("Imported Content")
		}
		it := scholarfolio.Item{ID: ids.NewID("i"), Text: line}
		// "text | subtext | date" rows carry structured columns
		if parts := strings.Split(line, " | "); len(parts) > 1 {
			it.Text = strings.TrimSpace(parts[0])
			it.Subtext = strings.TrimSpace(parts[1])
			if len(parts) > 2 {
				it.Date = strings.TrimSpace(parts[2])
			}
		}
		current.Items = append(current.Items, it)
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, src)
			if node.Level == 1 {
				page.Title = title
				continue
			}
			open(title)
		case *ast.Paragraph:
			addItem(strings.TrimSpace(nodeText(node, src)))
		case *ast.List:
			for li := node.FirstChild(); li != nil; li = li.NextSibling() {
				addItem(strings.TrimSpace(nodeText(li, src)))
			}
		}
	}
	flush()

	if len(page.Layout) == 0 {
		return page, fmt.Errorf("mdimport: no importable content")
	}
	return page, nil
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
