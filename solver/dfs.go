package solver

import (
	"context"
	"time"

	"github.com/katalvlaran/amphipod/burrow"
)

// budget is the soft time limit of one search.
type budget struct {
	on       bool
	deadline time.Time
}

func newBudget(o Options) budget {
	if o.TimeLimit <= 0 {
		return budget{}
	}

	return budget{on: true, deadline: time.Now().Add(o.TimeLimit)}
}

// check returns the context error, ErrTimeLimit once the deadline passed,
// or nil.
func (b budget) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.on && time.Now().After(b.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// step is one link of a solution path, from some burrow down to the sorted one.
type step struct {
	b    *burrow.Burrow
	next *step
}

// burrows flattens the chain starting at s.
func (s *step) burrows() []*burrow.Burrow {
	var out []*burrow.Burrow
	for ; s != nil; s = s.next {
		out = append(out, s.b)
	}

	return out
}

// dfsEngine holds the state of one depth-first branch-and-bound run.
type dfsEngine struct {
	// Policy
	withPath bool
	shared   *incumbent // nil prunes against per-parent bounds only

	// Memo and counters
	memo  memoTable
	stats Stats

	// Cancellation and time budget
	ctx    context.Context
	budget budget
	steps  int // sparse deadline checks counter
	err    error
}

func newDFSEngine(ctx context.Context, o Options, memo memoTable, shared *incumbent, bud budget) *dfsEngine {
	return &dfsEngine{
		withPath: o.ReturnPath,
		shared:   shared,
		memo:     memo,
		ctx:      ctx,
		budget:   bud,
	}
}

// halted reports whether the search must unwind. Context and deadline are
// polled every 4096 calls; once tripped, the engine stays halted.
func (e *dfsEngine) halted() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if (e.steps & 4095) != 0 {
		return false
	}
	e.err = e.budget.check(e.ctx)

	return e.err != nil
}

// limit combines the per-parent bound with the shared incumbent, if any.
func (e *dfsEngine) limit(bound int) int {
	if e.shared != nil {
		if g := e.shared.load(); g < bound {
			return g
		}
	}

	return bound
}

func (e *dfsEngine) link(b *burrow.Burrow, next *step) *step {
	if !e.withPath {
		return nil
	}

	return &step{b: b, next: next}
}

// search returns the cheapest total energy of a solution through b, reached
// with energy spent so far, or noSolution. The returned step chain starts at
// b when paths are requested.
func (e *dfsEngine) search(b *burrow.Burrow, energy, bound int) (int, *step) {
	if e.halted() {
		return noSolution, nil
	}

	// 1) Reached at least as cheaply before: that visit covers this one.
	if !e.memo.claim(b.Key(), energy) {
		e.stats.MemoHits++
		return noSolution, nil
	}
	e.stats.Expanded++

	// 2) Sorted: the trivial solution.
	if b.IsSolved() {
		if e.shared != nil {
			e.shared.offer(energy)
		}
		return energy, e.link(b, nil)
	}

	// 3) Branch on every move, pruning against the sibling bound.
	var (
		best = noSolution
		tail *step
		next int
	)
	moves := b.Moves()
	e.stats.Generated += int64(len(moves))
	for _, m := range moves {
		next = energy + m.Energy
		if next > e.limit(bound) {
			e.stats.Pruned++
			continue
		}
		cost, t := e.search(b.Apply(m), next, bound)
		if cost < best {
			best, tail = cost, t
			if cost < bound {
				bound = cost
			}
		}
	}

	if best == noSolution {
		return noSolution, nil
	}

	return best, e.link(b, tail)
}

// solveDepthFirst runs the single-goroutine depth-first strategy.
func solveDepthFirst(ctx context.Context, b *burrow.Burrow, o Options) (Result, error) {
	var shared *incumbent
	if o.GlobalBound {
		shared = newIncumbent()
	}
	e := newDFSEngine(ctx, o, make(localMemo), shared, newBudget(o))

	best, path := e.search(b, 0, noSolution)
	if e.err != nil {
		return Result{Stats: e.stats}, e.err
	}

	return newResult(best, path.burrows(), e.stats), nil
}

// newResult packs a search outcome; best == noSolution means unsolvable.
func newResult(best int, path []*burrow.Burrow, stats Stats) Result {
	if best == noSolution {
		return Result{Stats: stats}
	}

	return Result{Energy: best, Found: true, Path: path, Stats: stats}
}
