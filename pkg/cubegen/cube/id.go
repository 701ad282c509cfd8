package cube

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDSource issues monotonically increasing ULIDs. Safe for concurrent use.
type IDSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDSource creates an IDSource reading entropy from crypto/rand.
func NewIDSource() *IDSource {
	return NewIDSourceFrom(rand.Reader)
}

// NewIDSourceFrom creates an IDSource over a caller-supplied entropy reader.
func NewIDSourceFrom(r io.Reader) *IDSource {
	return &IDSource{entropy: ulid.Monotonic(r, 0)}
}

// New returns a fresh id stamped with t.
func (s *IDSource) New(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}
