package scholarfolio

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource generates unique, stable ids for new pages, blocks, items,
// and inline links. Injected rather than derived from timestamps so
// rapid successive inserts cannot collide.
type IDSource interface {
	NewID(prefix string) string
}

// UUIDSource generates ids backed by random UUIDs.
type UUIDSource struct{}

// NewID returns "<prefix>-<uuid>".
func (UUIDSource) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// SequenceSource generates deterministic ids from a monotonic counter.
// Intended for tests and snapshot fixtures.
type SequenceSource struct {
	n atomic.Int64
}

// NewID returns "<prefix>-<n>" with n increasing from 1.
func (s *SequenceSource) NewID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, s.n.Add(1))
}
