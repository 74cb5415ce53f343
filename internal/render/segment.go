package render

import (
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

// Segment is a run of text, optionally claimed by an inline link.
type Segment struct {
	Text string
	Link *scholarfolio.InlineLink
}

// Split partitions text into segments according to the item's inline
// links. Links apply in list order; matching is case-insensitive
// literal substring; a segment claimed by an earlier link is never
// re-split by a later one. A link with empty match text is skipped, so
// one bad link cannot take down the rest.
func Split(text string, links []scholarfolio.InlineLink) []Segment {
	segments := []Segment{{Text: text}}
	for i := range links {
		link := &links[i]
		if link.MatchText == "" {
			continue
		}
		next := make([]Segment, 0, len(segments))
		for _, seg := range segments {
			if seg.Link != nil {
				next = append(next, seg)
				continue
			}
			next = append(next, splitOne(seg.Text, link)...)
		}
		segments = next
	}
	return segments
}

// splitOne cuts an unclaimed run around every case-insensitive
// occurrence of the link's match text. Empty runs are dropped.
func splitOne(text string, link *scholarfolio.InlineLink) []Segment {
	lower := strings.ToLower(text)
	match := strings.ToLower(link.MatchText)
	var out []Segment
	for len(lower) > 0 {
		i := strings.Index(lower, match)
		if i < 0 || i+len(match) > len(text) {
			out = append(out, Segment{Text: text})
			break
		}
		if i > 0 {
			out = append(out, Segment{Text: text[:i]})
		}
		out = append(out, Segment{Text: text[i : i+len(match)], Link: link})
		text = text[i+len(match):]
		lower = lower[i+len(match):]
	}
	return out
}

// joined reassembles the segment texts; Split never loses characters.
func joined(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
