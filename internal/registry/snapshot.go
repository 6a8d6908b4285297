package registry

import "github.com/vk/modpin/internal/modkey"

// Snapshot maps normalized module keys to the latest version known to one
// registry. It is immutable once built; absence of a key means the module is
// unknown to this registry, which downstream treats as a silent skip rather
// than an error.
type Snapshot struct {
	latest map[modkey.Key]string
}

// NewSnapshot wraps an already-populated map. Callers must not retain the
// map after handing it over. Production code builds snapshots through Build;
// this constructor exists for it and for tests.
func NewSnapshot(latest map[modkey.Key]string) *Snapshot {
	return &Snapshot{latest: latest}
}

// Latest returns the most recent version recorded for key, and whether the
// key is tracked at all. Versions are opaque strings compared by exact
// equality, never parsed or ordered.
func (s *Snapshot) Latest(key modkey.Key) (string, bool) {
	v, ok := s.latest[key]
	return v, ok
}

// Len returns the number of tracked modules.
func (s *Snapshot) Len() int {
	return len(s.latest)
}
