package solver

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/amphipod/burrow"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilBurrow indicates that a nil *burrow.Burrow was passed to Solve.
	ErrNilBurrow = errors.New("solver: burrow is nil")

	// ErrUnknownStrategy indicates a Strategy value outside the known set.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")

	// ErrTimeLimit indicates that the search ran out of its time budget.
	ErrTimeLimit = errors.New("solver: time limit exceeded")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("solver: workers must be positive")

	// ErrBadFlushEvery indicates a memo flush batch below one.
	ErrBadFlushEvery = errors.New("solver: flush batch must be positive")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// DepthFirst is recursive branch-and-bound with memoization.
	DepthFirst Strategy = iota

	// BestFirst is Dijkstra's algorithm over the implicit state graph.
	BestFirst

	// Parallel fans the root successors out to a pool of DepthFirst workers.
	Parallel
)

var strategyNames = [...]string{
	DepthFirst: "depth-first",
	BestFirst:  "best-first",
	Parallel:   "parallel",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a strategy name as printed by String back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Stats counts the work one Solve call performed.
type Stats struct {
	Expanded  int64         // burrows whose moves were generated
	MemoHits  int64         // burrows skipped because a cheaper visit was recorded
	Pruned    int64         // moves cut by the bound
	Generated int64         // moves produced by move generation
	Elapsed   time.Duration // wall time of the search
}

func (s *Stats) add(o Stats) {
	s.Expanded += o.Expanded
	s.MemoHits += o.MemoHits
	s.Pruned += o.Pruned
	s.Generated += o.Generated
}

// Result is the outcome of Solve.
//
// Found is false when the sorted burrow is unreachable; Energy is then zero.
// Path is only filled under WithReturnPath: it starts at the initial burrow
// and ends at the sorted one, each entry one move after the previous.
type Result struct {
	Energy int
	Found  bool
	Path   []*burrow.Burrow
	Stats  Stats
}

// Options configures Solve.
type Options struct {
	Strategy       Strategy             // search algorithm
	ReturnPath     bool                 // fill Result.Path
	GlobalBound    bool                 // one incumbent for the whole DepthFirst tree
	Workers        int                  // Parallel pool size
	FlushEvery     int                  // Parallel memo write batch
	TimeLimit      time.Duration        // 0 disables the time budget
	Logger         *bolt.Logger         // nil logs nothing
	TracerProvider trace.TracerProvider // nil uses the global provider
	MeterProvider  metric.MeterProvider // nil uses the global provider
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithReturnPath asks Solve to return one optimal sequence of burrows.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithGlobalBound makes DepthFirst prune against the best solution found
// anywhere so far rather than among the current parent's children.
func WithGlobalBound() Option {
	return func(o *Options) {
		o.GlobalBound = true
	}
}

// WithWorkers sets the number of goroutines the Parallel strategy uses.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithFlushEvery sets how many memo writes a Parallel worker buffers before
// publishing them. Panics with ErrBadFlushEvery if n < 1.
func WithFlushEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadFlushEvery.Error())
		}
		o.FlushEvery = n
	}
}

// WithTimeLimit bounds the wall time of the search. Zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *bolt.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTracerProvider sets the tracer provider for the solve span.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider for search metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		o.MeterProvider = mp
	}
}

// DefaultOptions returns the options Solve starts from.
//
// Defaults:
//   - Strategy:   DepthFirst.
//   - ReturnPath: false.
//   - Workers:    runtime.GOMAXPROCS(0).
//   - FlushEvery: 256.
//   - TimeLimit:  0 (none).
func DefaultOptions() Options {
	return Options{
		Strategy:   DepthFirst,
		Workers:    runtime.GOMAXPROCS(0),
		FlushEvery: 256,
	}
}
