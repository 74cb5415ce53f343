// Package snapshot reads and writes the portable document file: a JSON
// object holding the profile plus the two presentation settings that
// live outside it. The same payload is embedded verbatim in static
// exports.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

// Defaults applied when a field is absent from an imported file.
const (
	DefaultTheme        = scholarfolio.Theme1
	DefaultPrimaryColor = "#8C1515"
)

// Snapshot is the on-disk and embedded wire format.
type Snapshot struct {
	Profile      *scholarfolio.Profile `json:"profile,omitempty"`
	Theme        scholarfolio.ThemeID  `json:"theme,omitempty"`
	PrimaryColor string                `json:"primaryColor,omitempty"`
}

// Encode renders the snapshot as indented JSON.
func Encode(s Snapshot) ([]byte, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return raw, nil
}

// Decode parses a snapshot. Absent fields stay zero so the caller can
// keep its current values (partial imports are tolerated); anything
// that is not a JSON object with the expected shape is rejected with
// ErrMalformedSnapshot.
func Decode(raw []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", scholarfolio.ErrMalformedSnapshot, err)
	}
	if s.Profile != nil && len(s.Profile.Pages) == 0 {
		return Snapshot{}, fmt.Errorf("%w: profile has no pages", scholarfolio.ErrMalformedSnapshot)
	}
	return s, nil
}

// Load reads and decodes a snapshot file.
func Load(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(raw)
}

// Save writes the snapshot to path, creating or replacing the file.
func Save(path string, s Snapshot) error {
	raw, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
