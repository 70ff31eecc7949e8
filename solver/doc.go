// Package solver finds the minimum total energy needed to sort a burrow.
//
// The search graph is implicit: nodes are burrow.Burrow values, edges are the
// legal moves returned by (*burrow.Burrow).Moves, weighted by their energy.
// Solve explores it with one of three strategies:
//
//   - DepthFirst (default): recursive branch-and-bound with a memo table.
//     For a burrow b reached with accumulated energy e:
//     1. If the memo already holds key(b) with an energy ≤ e, return nothing.
//     2. Record e for key(b).
//     3. If b is solved, return e.
//     4. For every move of cost c, skip it when e+c exceeds the bound,
//     otherwise recurse and tighten the bound with what the child found.
//     The bound is scoped to one parent's children; WithGlobalBound shares a
//     single incumbent across the whole tree instead, which prunes harder.
//   - BestFirst: Dijkstra over the same graph, with a lazy-decrease-key heap.
//     The first solved burrow popped from the heap is optimal.
//   - Parallel: the successors of the initial burrow are searched depth-first
//     by a bounded pool of goroutines. Workers share the memo behind a
//     read/write lock and flush their own writes in batches; bounds are local
//     to each worker and reconciled through one atomic incumbent. Races only
//     change how much gets pruned, never the returned minimum.
//
// Every strategy returns the true minimum. A burrow from which the sorted
// state cannot be reached yields Result.Found == false and a nil error.
//
// Options:
//
//	– WithStrategy(s):          DepthFirst, BestFirst or Parallel.
//	– WithReturnPath():         fill Result.Path with one optimal sequence.
//	– WithGlobalBound():        single incumbent bound for DepthFirst.
//	– WithWorkers(n):           goroutines used by Parallel (n ≥ 1).
//	– WithFlushEvery(n):        memo writes a Parallel worker buffers (n ≥ 1).
//	– WithTimeLimit(d):         soft time budget, checked every 4096 expansions.
//	– WithLogger(l):            bolt logger for run diagnostics.
//	– WithTracerProvider(tp):   OpenTelemetry tracer provider (default: global).
//	– WithMeterProvider(mp):    OpenTelemetry meter provider (default: global).
//
// Errors (sentinel):
//
//	– ErrNilBurrow        if the burrow passed to Solve is nil.
//	– ErrUnknownStrategy  if the strategy is not one of the three above.
//	– ErrTimeLimit        if the time budget ran out before the search ended.
//
// Cancelling the context aborts the search with the context's error.
//
// Telemetry: each call opens one "solver.Solve" span and feeds the counters
// solver_expanded_total, solver_memo_hits_total and solver_pruned_total plus
// the histogram solver_duration_seconds.
package solver
