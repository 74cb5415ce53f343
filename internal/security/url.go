// Package security validates user-supplied URLs before they reach
// rendered markup. Profiles travel between machines as JSON, so link
// and image destinations are untrusted input.
package security

import (
	"net/url"
	"strings"
)

// SafeHref returns a destination safe to emit into an anchor href.
// Unsafe or unparseable destinations collapse to "#".
func SafeHref(raw string) string {
	if raw == "" {
		return "#"
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return raw
	}
	return "#"
}

// SafeFileHref is SafeHref for embedded-file links: inline data URIs
// are allowed too, since file links carry their payload in the URL.
// Document types the browser would execute stay blocked.
func SafeFileHref(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "data:") {
		if strings.HasPrefix(lower, "data:text/html") || strings.HasPrefix(lower, "data:image/svg") {
			return "#"
		}
		return raw
	}
	return SafeHref(raw)
}

// SafeImageSrc returns a source safe to emit into an img tag. Inline
// data URIs are allowed for images only, everything else must be
// http(s) or relative.
func SafeImageSrc(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "data:image/") {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https":
		return raw
	}
	return ""
}
