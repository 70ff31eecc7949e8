package solver

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/amphipod/burrow"
)

// branch is the outcome of searching below one root move.
type branch struct {
	best int
	tail *step
}

// solveParallel searches each successor of b on its own goroutine, at most
// o.Workers at a time.
func solveParallel(ctx context.Context, b *burrow.Burrow, o Options) (Result, error) {
	var (
		memo   = newSharedMemo()
		shared = newIncumbent()
		bud    = newBudget(o)
		stats  Stats
		mu     sync.Mutex
	)

	// 1) The root itself is handled inline.
	memo.merge(map[burrow.Key]int{b.Key(): 0})
	stats.Expanded++
	if b.IsSolved() {
		var path []*burrow.Burrow
		if o.ReturnPath {
			path = []*burrow.Burrow{b}
		}
		return newResult(0, path, stats), nil
	}
	moves := b.Moves()
	stats.Generated += int64(len(moves))

	// 2) One task per root move; each owns its engine, memo view and stats.
	branches := make([]branch, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, m := range moves {
		g.Go(func() error {
			wm := newWorkerMemo(memo, o.FlushEvery)
			e := newDFSEngine(gctx, o, wm, shared, bud)
			best, tail := e.search(b.Apply(m), m.Energy, noSolution)
			wm.flush()

			mu.Lock()
			stats.add(e.stats)
			mu.Unlock()
			if e.err != nil {
				return e.err
			}
			branches[i] = branch{best: best, tail: tail}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Stats: stats}, err
	}

	// 3) Lowest energy wins; ties go to the earliest move for stable paths.
	pick := branch{best: noSolution}
	for _, br := range branches {
		if br.best < pick.best {
			pick = br
		}
	}
	if pick.best == noSolution {
		return newResult(noSolution, nil, stats), nil
	}
	var path []*burrow.Burrow
	if o.ReturnPath {
		path = append([]*burrow.Burrow{b}, pick.tail.burrows()...)
	}

	return newResult(pick.best, path, stats), nil
}
