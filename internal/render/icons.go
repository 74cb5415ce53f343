package render

import (
	"html"
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/security"
)

const iconSize = "w-full h-full p-0.5"

var iconGlyphs = map[scholarfolio.IconName]string{
	scholarfolio.IconGitHub:   `<svg class="` + iconSize + `" fill="currentColor" viewBox="0 0 24 24"><path d="M12 .297c-6.63 0-12 5.373-12 12 0 5.303 3.438 9.8 8.205 11.385.6.113.82-.258.82-.577 0-.285-.01-1.04-.015-2.04-3.338.724-4.042-1.61-4.042-1.61C4.422 18.07 3.633 17.7 3.633 17.7c-1.087-.744.084-.729.084-.729 1.205.084 1.838 1.236 1.838 1.236 1.07 1.835 2.809 1.305 3.495.998.108-.776.417-1.305.76-1.605-2.665-.3-5.466-1.332-5.466-5.93 0-1.31.465-2.38 1.235-3.22-.135-.303-.54-1.523.105-3.176 0 0 1.005-.322 3.3 1.23.96-.267 1.98-.399 3-.405 1.02.006 2.04.138 3 .405 2.28-1.552 3.285-1.23 3.285-1.23.645 1.653.24 2.873.12 3.176.765.84 1.23 1.91 1.23 3.22 0 4.61-2.805 5.625-5.475 5.92.42.36.81 1.096.81 2.22 0 1.606-.015 2.896-.015 3.286 0 .315.21.69.825.57C20.565 22.092 24 17.592 24 12.297c0-6.627-5.373-12-12-12"/></svg>`,
	scholarfolio.IconEmail:    `<svg class="` + iconSize + `" viewBox="0 0 24 24" fill="currentColor"><path d="M20 4H4c-1.1 0-1.99.9-1.99 2L2 18c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V6c0-1.1-.9-2-2-2zm0 4l-8 5-8-5V6l8 5 8-5v2z"/></svg>`,
	scholarfolio.IconScholar:  `<svg class="` + iconSize + `" viewBox="0 0 24 24" fill="currentColor"><path d="M12 2L1 7l11 5 9-4.09V17h2V7L12 2zm0 18c-3.31 0-6-2.69-6-6 0-1.34.45-2.58 1.21-3.57L12 13.1l4.79-2.67c.76.99 1.21 2.23 1.21 3.57 0 3.31-2.69 6-6 6z"/></svg>`,
	scholarfolio.IconORCID:    `<div class="w-full h-full bg-[#A6CE39] rounded-full flex items-center justify-center p-0.5"><svg viewBox="0 0 256 256" class="w-full h-full fill-white"><path d="M256,128c0,70.69-57.31,128-128,128S0,198.69,0,128S57.31,0,128,0,256,57.31,256,128z M71.94,189.26h20.17v-84.3H71.94 V189.26z M82.02,94.94c7.47,0,13.54-6.07,13.54-13.54S89.49,67.86,82.02,67.86S68.48,73.93,68.48,81.4S74.55,94.94,82.02,94.94z M107.03,189.26h40.35c34.1,0,46.5-24.18,46.5-42.15c0-30.83-22.18-42.15-46.5-42.15h-40.35V189.26z M127.2,172.11v-50h14.71 c22.42,0,32.32,12.72,32.32,25.01c0,16.51-12.35,25.01-32.32,25.01H127.2z"/></svg></div>`,
	scholarfolio.IconLocation: `<svg class="` + iconSize + `" fill="none" stroke="currentColor" stroke-width="2" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" d="M17.657 16.657L13.414 20.9a1.998 1.998 0 01-2.827 0l-4.244-4.243a8 8 0 1111.314 0z"/><path stroke-linecap="round" stroke-linejoin="round" d="M15 11a3 3 0 11-6 0 3 3 0 016 0z"/></svg>`,
}

// iconHTML renders an item's icon slot. Precedence: explicit image,
// custom uploaded glyph, built-in glyph, then a short uppercase label
// cut from the icon name so unknown names still render something.
func iconHTML(it scholarfolio.Item) string {
	if it.Image != "" {
		return `<img src="` + html.EscapeString(security.SafeImageSrc(it.Image)) + `" class="w-full h-full object-cover rounded-lg" alt="icon">`
	}
	if it.Icon == scholarfolio.IconCustom && it.CustomIcon != "" {
		return `<img src="` + html.EscapeString(security.SafeImageSrc(it.CustomIcon)) + `" class="w-full h-full object-contain" alt="icon">`
	}
	if it.Icon == "" || it.Icon == scholarfolio.IconNone {
		return ""
	}
	if svg, ok := iconGlyphs[it.Icon]; ok {
		return svg
	}
	name := string(it.Icon)
	if len(name) > 4 {
		name = name[:4]
	}
	return `<span class="text-[8px] font-black uppercase">` + html.EscapeString(strings.ToUpper(name)) + `</span>`
}
