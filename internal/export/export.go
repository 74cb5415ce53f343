// Package export builds the publishable artifact: one self-contained
// HTML file carrying the JSON snapshot, a pre-rendered static copy of
// every page, and a small script that switches the visible page. All
// markup comes from internal/render in static mode, so the export can
// never drift from what the editor shows. The only external references
// are the style and font CDNs.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/render"
	"github.com/scholarfolio/scholarfolio/internal/snapshot"
)

const head = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s | Academic Homepage</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700;900&family=Lora:ital,wght@0,400;0,500;0,600;0,700;1,400;1,500&family=JetBrains+Mono&display=swap" rel="stylesheet">
    <style>
        body { background-color: #f8fafc; color: #0f172a; }
        .font-serif { font-family: 'Lora', serif !important; }
        .font-mono { font-family: 'JetBrains Mono', monospace !important; }
        .font-sans { font-family: 'Inter', sans-serif !important; }
        .content-text { white-space: pre-wrap !important; word-wrap: break-word; }
        a { color: inherit; }
    </style>
</head>
<body class="antialiased text-slate-900">
`

const pageSwitchScript = `<script>
(function () {
    function show(id) {
        var pages = document.querySelectorAll('section[data-page-id]');
        var found = false;
        pages.forEach(function (p) {
            var match = p.getAttribute('data-page-id') === id;
            p.hidden = !match;
            if (match) found = true;
        });
        if (!found && pages.length > 0) pages[0].hidden = false;
        window.scrollTo({ top: 0, behavior: 'smooth' });
    }
    document.addEventListener('click', function (e) {
        var el = e.target.closest('[data-page-id]');
        if (!el || el.tagName === 'SECTION') return;
        e.preventDefault();
        show(el.getAttribute('data-page-id'));
    });
})();
</script>
`

// Build renders the artifact for a snapshot. Every page is rendered
// up front; all but the first start hidden and the inline script flips
// visibility when navigation or an internal link is clicked.
func Build(snap snapshot.Snapshot) ([]byte, error) {
	if snap.Profile == nil || len(snap.Profile.Pages) == 0 {
		return nil, fmt.Errorf("export: %w", scholarfolio.ErrMalformedSnapshot)
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("export: encode snapshot: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, head, html.EscapeString(snap.Profile.Name.Text))
	b.WriteString(`<div class="p-12 md:p-24 bg-white min-h-screen"><div class="max-w-6xl mx-auto">`)
	for i, pg := range snap.Profile.Pages {
		hidden := ""
		if i > 0 {
			hidden = " hidden"
		}
		fmt.Fprintf(&b, `<section data-page-id="%s"%s>`, html.EscapeString(pg.ID), hidden)
		b.WriteString(render.Page(snap.Profile, render.Options{
			Mode:         render.ModeStatic,
			Theme:        snap.Theme,
			PrimaryColor: snap.PrimaryColor,
			ActivePageID: pg.ID,
		}))
		b.WriteString(`</section>`)
	}
	b.WriteString(`</div></div>`)

	// snapshot embedded for re-import into the editor
	b.WriteString(`<script type="application/json" id="site-data">`)
	b.Write(jsonForScript(payload))
	b.WriteString("</script>\n")
	b.WriteString(pageSwitchScript)
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

// jsonForScript escapes the only sequence that could terminate the
// embedding script element early.
func jsonForScript(raw []byte) []byte {
	return []byte(strings.ReplaceAll(string(raw), "</", `<\/`))
}

// Filename derives the artifact name from the profile subdomain,
// falling back to "homepage" when the sanitized subdomain is empty.
func Filename(p *scholarfolio.Profile) string {
	sub := scholarfolio.SanitizeSubdomain(p.Subdomain)
	if sub == "" {
		sub = "homepage"
	}
	return sub + ".html"
}

// WriteFile builds the artifact and writes it into dir, returning the
// full output path.
func WriteFile(dir string, snap snapshot.Snapshot) (string, error) {
	out, err := Build(snap)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(dir, Filename(snap.Profile))
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return path, nil
}
