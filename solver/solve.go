package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/logging"
)

// Solve computes the minimum energy needed to sort b.
//
// Preconditions and validation (in order):
//  1. b must be non-nil (ErrNilBurrow).
//  2. The strategy must be known (ErrUnknownStrategy).
//  3. ctx must not be done already (ctx.Err()).
//
// An unsolvable burrow is not an error: the Result has Found == false.
// When the search is cut short by ctx or WithTimeLimit, the returned Result
// carries the statistics gathered so far and nothing else.
func Solve(ctx context.Context, b *burrow.Burrow, opts ...Option) (Result, error) {
	// 1) Build Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate input
	if b == nil {
		return Result{}, ErrNilBurrow
	}
	var run func(context.Context, *burrow.Burrow, Options) (Result, error)
	switch o.Strategy {
	case DepthFirst:
		run = solveDepthFirst
	case BestFirst:
		run = solveBestFirst
	case Parallel:
		run = solveParallel
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	log := o.Logger
	if log == nil {
		log = logging.Discard()
	}
	tel := newTelemetry(o)

	// 3) Search inside the span
	ctx, span := tel.start(ctx, o.Strategy, b.Depth())
	logging.NewEvent(log.Debug()).
		Add(logging.Component("solver")).
		Add(logging.Strategy(o.Strategy.String())).
		Add(logging.Depth(b.Depth())).
		Msg("search started")

	start := time.Now()
	res, err := run(ctx, b, o)
	res.Stats.Elapsed = time.Since(start)

	// 4) Report
	tel.finish(ctx, span, o.Strategy, res, err, res.Stats.Elapsed)
	logSolve(log, o.Strategy, res, err)

	return res, err
}

func logSolve(log *bolt.Logger, s Strategy, res Result, err error) {
	if err != nil {
		logging.NewEvent(log.Warn()).
			Add(logging.Component("solver")).
			Add(logging.Strategy(s.String())).
			Add(logging.Expanded(res.Stats.Expanded)).
			Add(logging.ErrorField(err)).
			Msg("search aborted")
		return
	}

	logging.NewEvent(log.Info()).
		Add(logging.Component("solver")).
		Add(logging.Strategy(s.String())).
		Add(logging.Found(res.Found)).
		Add(logging.Energy(res.Energy)).
		Add(logging.Expanded(res.Stats.Expanded)).
		Add(logging.Duration(res.Stats.Elapsed)).
		Msg("search finished")
}
