package profiler

import (
	"errors"
	"sync"
)

var ErrInvalidCapacity = errors.New("max retained requests must be at least 1")

// Store keeps the most recent profiled requests in insertion order, evicting
// the oldest entries once the configured capacity is exceeded. All methods
// are safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	records     []Record
	maxRetained int
}

func NewStore(maxRetained int) (*Store, error) {
	if maxRetained < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Store{
		records:     make([]Record, 0, maxRetained),
		maxRetained: maxRetained,
	}, nil
}

func (s *Store) Insert(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, r)
	if excess := len(s.records) - s.maxRetained; excess > 0 {
		// Shift in place so the backing array stays at capacity instead of
		// growing with every eviction.
		s.records = append(s.records[:0], s.records[excess:]...)
	}
}

// Snapshot returns a copy of the retained records, oldest first.
func (s *Store) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
