package solver

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/amphipod/burrow"
)

// bestFirstRunner holds the mutable state of one Dijkstra run over burrows.
type bestFirstRunner struct {
	dist    map[burrow.Key]int            // best-known energy per burrow
	prev    map[burrow.Key]*burrow.Burrow // predecessor on the cheapest path (ReturnPath only)
	visited map[burrow.Key]bool           // burrows whose energy is final
	pq      statePQ
	stats   Stats

	ctx    context.Context
	budget budget
	steps  int
}

func solveBestFirst(ctx context.Context, b *burrow.Burrow, o Options) (Result, error) {
	r := &bestFirstRunner{
		dist:    make(map[burrow.Key]int),
		visited: make(map[burrow.Key]bool),
		ctx:     ctx,
		budget:  newBudget(o),
	}
	if o.ReturnPath {
		r.prev = make(map[burrow.Key]*burrow.Burrow)
	}

	// 1) Seed the heap with the initial burrow at energy zero.
	root := b.Key()
	r.dist[root] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{b: b, key: root, energy: 0})

	// 2) Pop in energy order until the sorted burrow surfaces.
	for r.pq.Len() > 0 {
		if err := r.check(); err != nil {
			return Result{Stats: r.stats}, err
		}
		item := heap.Pop(&r.pq).(*stateItem)

		// Stale entry: a cheaper copy was already finalized.
		if r.visited[item.key] {
			r.stats.MemoHits++
			continue
		}
		r.visited[item.key] = true
		r.stats.Expanded++

		if item.b.IsSolved() {
			return newResult(item.energy, r.path(root, item.b), r.stats), nil
		}
		r.relax(item)
	}

	// 3) Heap drained without reaching the sorted burrow.
	return newResult(noSolution, nil, r.stats), nil
}

// check polls the context and deadline every 4096 pops.
func (r *bestFirstRunner) check() error {
	r.steps++
	if (r.steps & 4095) != 0 {
		return nil
	}

	return r.budget.check(r.ctx)
}

// relax pushes every successor of item whose energy strictly improves.
func (r *bestFirstRunner) relax(item *stateItem) {
	moves := item.b.Moves()
	r.stats.Generated += int64(len(moves))

	var (
		next *burrow.Burrow
		key  burrow.Key
		e    int
	)
	for _, m := range moves {
		next = item.b.Apply(m)
		key = next.Key()
		e = item.energy + m.Energy
		if d, ok := r.dist[key]; ok && d <= e {
			r.stats.Pruned++
			continue
		}
		r.dist[key] = e
		if r.prev != nil {
			r.prev[key] = item.b
		}
		heap.Push(&r.pq, &stateItem{b: next, key: key, energy: e})
	}
}

// path walks the predecessor map back from goal. Nil without ReturnPath.
func (r *bestFirstRunner) path(root burrow.Key, goal *burrow.Burrow) []*burrow.Burrow {
	if r.prev == nil {
		return nil
	}
	var rev []*burrow.Burrow
	for cur := goal; ; cur = r.prev[cur.Key()] {
		rev = append(rev, cur)
		if cur.Key() == root {
			break
		}
	}
	out := make([]*burrow.Burrow, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}

	return out
}

// stateItem is one heap entry: a burrow and the energy it was reached with.
type stateItem struct {
	b      *burrow.Burrow
	key    burrow.Key
	energy int
}

// statePQ is a min-heap of *stateItem ordered by energy. Improvements push a
// fresh item; outdated ones are skipped when popped.
type statePQ []*stateItem

func (pq statePQ) Len() int           { return len(pq) }
func (pq statePQ) Less(i, j int) bool { return pq[i].energy < pq[j].energy }
func (pq statePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
