package profiler_test

import (
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleprofiler/internal/profiler"
)

func record(path string) profiler.Record {
	return profiler.Record{
		Timestamp:   time.Now(),
		Path:        path,
		Method:      "GET",
		StatusCode:  200,
		TotalTimeMs: 1.5,
		CPUTimeMs:   0.5,
	}
}

func paths(records []profiler.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Path
	}
	return out
}

func TestNewStore_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		t.Run(strconv.Itoa(capacity), func(t *testing.T) {
			s, err := profiler.NewStore(capacity)
			require.ErrorIs(t, err, profiler.ErrInvalidCapacity)
			assert.Nil(t, s)
		})
	}
}

func TestStore_InsertEvictsOldest(t *testing.T) {
	s, err := profiler.NewStore(3)
	require.NoError(t, err)

	for _, p := range []string{"/a", "/b", "/c", "/d"} {
		s.Insert(record(p))
	}

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []string{"/b", "/c", "/d"}, paths(s.Snapshot()))
}

func TestStore_BoundedRetention(t *testing.T) {
	const capacity = 10
	s, err := profiler.NewStore(capacity)
	require.NoError(t, err)

	var want []string
	for i := 0; i < 100; i++ {
		p := fmt.Sprintf("/r/%d", i)
		s.Insert(record(p))
		want = append(want, p)
		require.LessOrEqual(t, s.Size(), capacity)
	}

	// The snapshot is exactly the last `capacity` inserts, in order.
	assert.Equal(t, want[len(want)-capacity:], paths(s.Snapshot()))
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s, err := profiler.NewStore(5)
	require.NoError(t, err)
	s.Insert(record("/a"))

	snap := s.Snapshot()
	snap[0].Path = "/mutated"

	assert.Equal(t, []string{"/a"}, paths(s.Snapshot()))
}

func TestStore_Clear(t *testing.T) {
	s, err := profiler.NewStore(5)
	require.NoError(t, err)

	s.Insert(record("/a"))
	s.Insert(record("/b"))
	require.Equal(t, 2, s.Size())

	s.Clear()

	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.Snapshot())

	// The store stays usable after a clear.
	s.Insert(record("/c"))
	assert.Equal(t, []string{"/c"}, paths(s.Snapshot()))
}

func TestStore_ConcurrentInserts(t *testing.T) {
	const (
		capacity   = 10
		goroutines = 50
		perWorker  = 20
	)

	s, err := profiler.NewStore(capacity)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Insert(record(fmt.Sprintf("/w/%d/%d", g, i)))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, capacity, s.Size())

	inserted := make(map[string]bool)
	for g := 0; g < goroutines; g++ {
		for i := 0; i < perWorker; i++ {
			inserted[fmt.Sprintf("/w/%d/%d", g, i)] = true
		}
	}
	seen := make(map[string]bool)
	for _, r := range s.Snapshot() {
		assert.True(t, inserted[r.Path], "unexpected record %q", r.Path)
		assert.False(t, seen[r.Path], "duplicated record %q", r.Path)
		seen[r.Path] = true
	}
}

func TestStore_ConcurrentMixedOperations(t *testing.T) {
	const capacity = 8
	s, err := profiler.NewStore(capacity)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				switch i % 4 {
				case 0:
					s.Clear()
				case 1:
					_ = s.Snapshot()
				default:
					s.Insert(record(fmt.Sprintf("/m/%d/%d", g, i)))
				}
				// No caller may ever observe more than capacity records.
				require.LessOrEqual(t, s.Size(), capacity)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Size(), capacity)
}
