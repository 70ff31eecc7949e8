package solver

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/amphipod/burrow"
)

// noSolution marks an energy that no solution has reached.
const noSolution = math.MaxInt

// memoTable remembers the cheapest energy each burrow was reached with.
type memoTable interface {
	// claim reports whether a visit to k with energy should be explored.
	// It is false when k was already recorded at an energy ≤ energy;
	// otherwise energy is recorded for k and claim returns true.
	claim(k burrow.Key, energy int) bool
}

// localMemo is the single-goroutine memo table.
type localMemo map[burrow.Key]int

func (m localMemo) claim(k burrow.Key, energy int) bool {
	if seen, ok := m[k]; ok && seen <= energy {
		return false
	}
	m[k] = energy

	return true
}

// sharedMemo is read concurrently by every Parallel worker and written in
// batches under the exclusive lock.
type sharedMemo struct {
	mu      sync.RWMutex
	entries map[burrow.Key]int
}

func newSharedMemo() *sharedMemo {
	return &sharedMemo{entries: make(map[burrow.Key]int)}
}

func (s *sharedMemo) lookup(k burrow.Key) (int, bool) {
	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()

	return e, ok
}

// merge publishes a batch, keeping the cheaper energy on conflicts.
func (s *sharedMemo) merge(batch map[burrow.Key]int) {
	s.mu.Lock()
	for k, e := range batch {
		if seen, ok := s.entries[k]; !ok || e < seen {
			s.entries[k] = e
		}
	}
	s.mu.Unlock()
}

func (s *sharedMemo) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// workerMemo is one worker's view of a sharedMemo: its own unpublished writes
// are consulted first, then the shared table.
type workerMemo struct {
	shared     *sharedMemo
	pending    map[burrow.Key]int
	flushEvery int
}

func newWorkerMemo(shared *sharedMemo, flushEvery int) *workerMemo {
	return &workerMemo{
		shared:     shared,
		pending:    make(map[burrow.Key]int, flushEvery),
		flushEvery: flushEvery,
	}
}

func (w *workerMemo) claim(k burrow.Key, energy int) bool {
	if seen, ok := w.pending[k]; ok && seen <= energy {
		return false
	}
	if seen, ok := w.shared.lookup(k); ok && seen <= energy {
		return false
	}
	w.pending[k] = energy
	if len(w.pending) >= w.flushEvery {
		w.flush()
	}

	return true
}

func (w *workerMemo) flush() {
	if len(w.pending) == 0 {
		return
	}
	w.shared.merge(w.pending)
	w.pending = make(map[burrow.Key]int, w.flushEvery)
}

// incumbent is the best solution energy any worker has found so far.
type incumbent struct {
	v atomic.Int64
}

func newIncumbent() *incumbent {
	i := &incumbent{}
	i.v.Store(int64(noSolution))

	return i
}

func (i *incumbent) load() int { return int(i.v.Load()) }

// offer lowers the incumbent to energy if that improves it.
func (i *incumbent) offer(energy int) {
	for {
		cur := i.v.Load()
		if int64(energy) >= cur || i.v.CompareAndSwap(cur, int64(energy)) {
			return
		}
	}
}
