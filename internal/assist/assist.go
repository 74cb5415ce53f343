// Package assist calls a Gemini-style text generation endpoint for the
// editor's writing helpers. Failures are soft: callers always get a
// usable value back, the worst case being their own input.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/scholarfolio/scholarfolio/internal/config"
)

// Client talks to the assist endpoint.
type Client struct {
	endpoint string
	model    string
	apiKey   string
	hc       *http.Client
	limiter  *rate.Limiter
}

// New builds a client from the assist configuration. A nil config
// yields a client with no credential; HasCredential gates the UI.
func New(cfg *config.AssistConfig) *Client {
	rpm := cfg.GetRequestsPerMinute()
	return &Client{
		endpoint: cfg.GetEndpoint(),
		model:    cfg.GetModel(),
		apiKey:   cfg.GetAPIKey(),
		hc:       &http.Client{Timeout: cfg.GetTimeout()},
		limiter:  rate.NewLimiter(rate.Limit(rpm/60.0), 1),
	}
}

// HasCredential reports whether an API key is configured. Checked once
// at startup so the editor can hide the assist buttons.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate runs one prompt and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if !c.HasCredential() {
		return "", fmt.Errorf("assist: no API key configured")
	}
	if !c.limiter.Allow() {
		return "", fmt.Errorf("assist: rate limited")
	}

	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("assist: encode request: %w", err)
	}
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", strings.TrimRight(c.endpoint, "/"), c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("assist: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("assist: endpoint returned %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("assist: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assist: empty response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// OptimizeBio rewrites a bio for a faculty homepage. On any failure
// the original text comes back unchanged.
func (c *Client) OptimizeBio(ctx context.Context, bio string) string {
	prompt := fmt.Sprintf("Rewrite the following academic bio to be more professional, concise, and impactful for a faculty homepage: %q", bio)
	text, err := c.generate(ctx, prompt)
	if err != nil {
		log.Printf("[ASSIST] optimize bio: %v", err)
		return bio
	}
	return strings.TrimSpace(text)
}

// SuggestResearchInterests proposes three keywords extending the given
// interests. On failure it returns nil.
func (c *Client) SuggestResearchInterests(ctx context.Context, interests []string) []string {
	prompt := fmt.Sprintf("Given these research interests: %s, suggest 3 more specific and modern academic keywords or areas. Return only the 3 keywords separated by commas.", strings.Join(interests, ", "))
	text, err := c.generate(ctx, prompt)
	if err != nil {
		log.Printf("[ASSIST] suggest interests: %v", err)
		return nil
	}
	var out []string
	for _, s := range strings.Split(text, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
