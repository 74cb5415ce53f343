package security

import "testing"

func TestSafeHref(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://scholar.google.com/citations?user=x", "https://scholar.google.com/citations?user=x"},
		{"http://example.edu", "http://example.edu"},
		{"mailto:pi@university.edu", "mailto:pi@university.edu"},
		{"tel:+1-650-555-0100", "tel:+1-650-555-0100"},
		{"/papers/2024.pdf", "/papers/2024.pdf"},
		{"#", "#"},
		{"", "#"},
		{"javascript:alert(1)", "#"},
		{"JavaScript:alert(1)", "#"},
		{"vbscript:msgbox", "#"},
		{"data:text/html,<script>", "#"},
		{"://bad", "#"},
	}
	for _, c := range cases {
		if got := SafeHref(c.in); got != c.want {
			t.Errorf("SafeHref(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSafeFileHref(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"data:application/pdf;base64,JVBERi0xLjQ=", "data:application/pdf;base64,JVBERi0xLjQ="},
		{"data:text/plain;base64,aGVsbG8=", "data:text/plain;base64,aGVsbG8="},
		{"DATA:application/pdf;base64,JVBERi0xLjQ=", "DATA:application/pdf;base64,JVBERi0xLjQ="},
		{"data:text/html,<script>alert(1)</script>", "#"},
		{"data:image/svg+xml;base64,PHN2Zz4=", "#"},
		{"https://example.edu/cv.pdf", "https://example.edu/cv.pdf"},
		{"javascript:alert(1)", "#"},
		{"", "#"},
	}
	for _, c := range cases {
		if got := SafeFileHref(c.in); got != c.want {
			t.Errorf("SafeFileHref(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSafeImageSrc(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://images.unsplash.com/photo-1", "https://images.unsplash.com/photo-1"},
		{"data:image/png;base64,iVBOR", "data:image/png;base64,iVBOR"},
		{"DATA:IMAGE/jpeg;base64,/9j/", "DATA:IMAGE/jpeg;base64,/9j/"},
		{"/assets/team.jpg", "/assets/team.jpg"},
		{"", ""},
		{"data:text/html,<script>", ""},
		{"javascript:alert(1)", ""},
	}
	for _, c := range cases {
		if got := SafeImageSrc(c.in); got != c.want {
			t.Errorf("SafeImageSrc(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
