package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/config"
	"github.com/katalvlaran/amphipod/logging"
	"github.com/katalvlaran/amphipod/solver"
	"github.com/katalvlaran/amphipod/store"
)

// ErrUnsolvable indicates an input whose burrow can never be sorted.
var ErrUnsolvable = errors.New("burrow cannot be sorted")

// solveOptions holds options for the solve command.
type solveOptions struct {
	file        string
	part        int
	configPath  string
	strategy    string
	workers     int
	timeout     time.Duration
	cacheDir    string
	logLevel    string
	globalBound bool
	steps       bool
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the minimum energy for a burrow diagram",
		Long: `Solve reads a burrow diagram and prints the minimum total energy.

Part 2 unfolds a two-row diagram into the four-row variant first.

Examples:
  # Part one of the puzzle
  amphipod solve -p 1 -f input.txt

  # Part two, on all cores, printing every step
  amphipod solve -p 2 -f input.txt --strategy parallel --steps

  # Remember answers between runs
  amphipod solve -p 2 -f input.txt --cache-dir ~/.cache/amphipod`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `Input diagram ("-" for stdin)`)
	cmd.Flags().IntVarP(&opts.part, "part", "p", 1, "Puzzle part: 1 or 2")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Search strategy: depth-first, best-first or parallel")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Goroutines for the parallel strategy")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Give up after this long")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "Directory of the result cache")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.globalBound, "global-bound", false, "Prune depth-first search against one global incumbent")
	cmd.Flags().BoolVar(&opts.steps, "steps", false, "Print every burrow along one optimal solution")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// loadConfig merges the config file, environment and flags.
func (opts *solveOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	// Override config values with CLI options
	if opts.strategy != "" {
		cfg.Solver.Strategy = opts.strategy
	}
	if opts.workers > 0 {
		cfg.Solver.Workers = opts.workers
	}
	if opts.timeout > 0 {
		cfg.Solver.TimeLimit = opts.timeout
	}
	if opts.globalBound {
		cfg.Solver.GlobalBound = true
	}
	if opts.cacheDir != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.InMemory = false
		cfg.Cache.Dir = opts.cacheDir
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	return cfg, cfg.Validate()
}

// runSolve executes the solve command.
func (a *App) runSolve(cmd *cobra.Command, opts *solveOptions) error {
	ctx := cmd.Context()

	// 1) Configuration and logging
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	lc := cfg.Logging()
	lc.Output = a.stderr
	log := logging.New(lc)
	runID := uuid.NewString()

	// 2) Input
	rooms, err := readRooms(opts.file, cmd.InOrStdin(), opts.part)
	if err != nil {
		return err
	}
	b, err := burrow.New(rooms)
	if err != nil {
		return err
	}

	// 3) Cached answer, unless the steps are wanted
	var st *store.Store
	if storeOpts, ok := cfg.StoreOptions(); ok {
		storeOpts = append(storeOpts, store.WithLogger(store.NewLogger(log)))
		if st, err = store.Open(store.DefaultConfig(), storeOpts...); err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer st.Close()

		if !opts.steps {
			entry, found, err := st.Get(ctx, b.Key())
			if err != nil {
				return fmt.Errorf("failed to read cache: %w", err)
			}
			if found {
				logging.NewEvent(log.Info()).
					Add(logging.RunID(runID)).
					Add(logging.Cached(true)).
					Add(logging.Strategy(entry.Strategy)).
					Add(logging.Energy(entry.Energy)).
					Msg("served from cache")
				return a.report(entry.Found, entry.Energy, nil)
			}
		}
	}

	// 4) Search
	logging.NewEvent(log.Info()).
		Add(logging.RunID(runID)).
		Add(logging.Strategy(cfg.Solver.Strategy)).
		Add(logging.Depth(b.Depth())).
		Msg("solving")
	res, err := a.search(ctx, b, cfg, opts, log)
	if err != nil {
		logging.NewEvent(log.Error()).
			Add(logging.RunID(runID)).
			Add(logging.ErrorField(err)).
			Msg("solve failed")
		return err
	}

	// 5) Remember the answer
	if st != nil {
		entry := store.Entry{Energy: res.Energy, Found: res.Found, Strategy: cfg.Solver.Strategy}
		if err = st.Put(ctx, b.Key(), entry); err != nil {
			logging.NewEvent(log.Warn()).
				Add(logging.RunID(runID)).
				Add(logging.ErrorField(err)).
				Msg("failed to cache result")
		}
	}

	return a.report(res.Found, res.Energy, res.Path)
}

func (a *App) search(ctx context.Context, b *burrow.Burrow, cfg config.Config, opts *solveOptions, log *bolt.Logger) (solver.Result, error) {
	solverOpts, err := cfg.SolverOptions()
	if err != nil {
		return solver.Result{}, err
	}
	solverOpts = append(solverOpts, solver.WithLogger(log))
	if opts.steps {
		solverOpts = append(solverOpts, solver.WithReturnPath())
	}

	res, err := solver.Solve(ctx, b, solverOpts...)
	if err != nil {
		return res, fmt.Errorf("search failed: %w", err)
	}

	return res, nil
}

// report prints the optional steps and the energy.
func (a *App) report(found bool, energy int, path []*burrow.Burrow) error {
	if !found {
		return ErrUnsolvable
	}

	spent := 0
	for i, s := range path {
		if i > 0 {
			spent += stepEnergy(path[i-1], s)
		}
		_, _ = fmt.Fprintf(a.stdout, "Step %d (energy %d):\n%s\n\n", i, spent, render(s, a.color))
	}
	_, _ = fmt.Fprintln(a.stdout, energy)

	return nil
}

// stepEnergy returns the cost of the move leading from prev to next.
func stepEnergy(prev, next *burrow.Burrow) int {
	for _, m := range prev.Moves() {
		if prev.Apply(m).Equal(next) {
			return m.Energy
		}
	}

	return 0
}
