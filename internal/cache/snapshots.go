package cache

import (
	"sync"

	"github.com/gogpu/andie/raster"
)

// DefaultSnapshots is the soft limit used by editors.
const DefaultSnapshots = 16

// Snapshots is an LRU store of history snapshots with a soft limit.
// When the limit is exceeded the least recently used quarter is evicted.
//
// Stored buffers are shared with the caller and must not be modified.
type Snapshots struct {
	mu        sync.Mutex
	entries   map[int]*snapshot
	softLimit int
	tick      int64
}

type snapshot struct {
	buf   *raster.Buffer
	atime int64
}

// NewSnapshots creates a store holding about softLimit snapshots.
// A softLimit of 0 or less disables storage.
func NewSnapshots(softLimit int) *Snapshots {
	return &Snapshots{
		entries:   make(map[int]*snapshot),
		softLimit: softLimit,
	}
}

// Get returns the snapshot at depth.
func (s *Snapshots) Get(depth int) (*raster.Buffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[depth]
	if !ok {
		return nil, false
	}
	s.tick++
	e.atime = s.tick
	return e.buf, true
}

// Put stores buf as the snapshot at depth. Depths below 1 and nil
// buffers are ignored.
func (s *Snapshots) Put(depth int, buf *raster.Buffer) {
	if depth < 1 || buf == nil || s.softLimit <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++
	s.entries[depth] = &snapshot{buf: buf, atime: s.tick}
	if len(s.entries) > s.softLimit {
		s.evictOldest()
	}
}

// Nearest returns the deepest snapshot at or below depth. It returns
// (0, nil) when none is stored.
func (s *Snapshots) Nearest(depth int) (int, *raster.Buffer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := 0
	var found *snapshot
	for d, e := range s.entries {
		if d <= depth && d > best {
			best, found = d, e
		}
	}
	if found == nil {
		return 0, nil
	}
	s.tick++
	found.atime = s.tick
	return best, found.buf
}

// Truncate drops every snapshot deeper than depth. Call it when the
// history entry at position depth is replaced.
func (s *Snapshots) Truncate(depth int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for d := range s.entries {
		if d > depth {
			delete(s.entries, d)
		}
	}
}

// Clear removes all snapshots.
func (s *Snapshots) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[int]*snapshot)
	s.tick = 0
}

// Len returns the number of stored snapshots.
func (s *Snapshots) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// evictOldest shrinks the store to three quarters of the soft limit.
// Caller must hold s.mu.
func (s *Snapshots) evictOldest() {
	target := max(s.softLimit*3/4, 1)
	toEvict := len(s.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		depth int
		atime int64
	}
	all := make([]aged, 0, len(s.entries))
	for d, e := range s.entries {
		all = append(all, aged{d, e.atime})
	}

	// Partial selection sort; toEvict is small.
	for i := 0; i < toEvict; i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(s.entries, all[i].depth)
	}
}
