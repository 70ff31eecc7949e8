// Package config loads the amphipod configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// AMPHIPOD_* environment variables. The result is checked with struct-tag
// validation before use.
//
//	solver:
//	  strategy: parallel      # depth-first | best-first | parallel
//	  workers: 8
//	  flush_every: 256
//	  global_bound: false
//	  time_limit: 2m
//	log:
//	  level: info             # trace | debug | info | warn | error
//	  format: console         # console | json
//	cache:
//	  enabled: true
//	  dir: ~/.cache/amphipod
//	  in_memory: false
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/amphipod/logging"
	"github.com/katalvlaran/amphipod/solver"
	"github.com/katalvlaran/amphipod/store"
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrRead indicates the config file could not be read or parsed.
	ErrRead = errors.New("config: cannot read file")

	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

var validate = validator.New()

// Config is the full application configuration.
type Config struct {
	// Solver contains search settings.
	Solver SolverConfig `yaml:"solver"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`

	// Cache contains result store settings.
	Cache CacheConfig `yaml:"cache"`
}

// SolverConfig mirrors the solver options.
type SolverConfig struct {
	Strategy    string        `yaml:"strategy" validate:"oneof=depth-first best-first parallel"`
	Workers     int           `yaml:"workers" validate:"gte=1,lte=1024"`
	FlushEvery  int           `yaml:"flush_every" validate:"gte=1"`
	GlobalBound bool          `yaml:"global_bound"`
	TimeLimit   time.Duration `yaml:"time_limit" validate:"gte=0"`
}

// LogConfig selects level and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// CacheConfig controls the persistent result store.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Dir      string `yaml:"dir" validate:"required_if=Enabled true InMemory false"`
	InMemory bool   `yaml:"in_memory"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			Strategy:   solver.DepthFirst.String(),
			Workers:    runtime.GOMAXPROCS(0),
			FlushEvery: 256,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	// 1) Start with defaults
	cfg := Default()

	// 2) Overlay the file
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrRead, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
		}
	}

	// 3) Overlay the environment
	loadFromEnv(&cfg)

	// 4) Resolve a home-relative cache directory
	dir, err := expandHome(cfg.Cache.Dir)
	if err != nil {
		return cfg, fmt.Errorf("%w: cache.dir: %w", ErrInvalid, err)
	}
	cfg.Cache.Dir = dir

	// 5) Validate
	return cfg, cfg.Validate()
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user", are returned unchanged.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// loadFromEnv applies AMPHIPOD_* variables; malformed numbers are ignored.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("AMPHIPOD_STRATEGY"); v != "" {
		cfg.Solver.Strategy = v
	}
	if v := os.Getenv("AMPHIPOD_WORKERS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Solver.Workers = i
		}
	}
	if v := os.Getenv("AMPHIPOD_TIME_LIMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Solver.TimeLimit = d
		}
	}
	if v := os.Getenv("AMPHIPOD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AMPHIPOD_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("AMPHIPOD_CACHE_DIR"); v != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Dir = v
	}
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SolverOptions converts the solver section into solver options.
func (c Config) SolverOptions() ([]solver.Option, error) {
	s, err := solver.ParseStrategy(c.Solver.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Solver.Workers < 1 || c.Solver.FlushEvery < 1 {
		return nil, fmt.Errorf("%w: workers and flush_every must be positive", ErrInvalid)
	}
	opts := []solver.Option{
		solver.WithStrategy(s),
		solver.WithWorkers(c.Solver.Workers),
		solver.WithFlushEvery(c.Solver.FlushEvery),
		solver.WithTimeLimit(c.Solver.TimeLimit),
	}
	if c.Solver.GlobalBound {
		opts = append(opts, solver.WithGlobalBound())
	}

	return opts, nil
}

// Logging converts the log section into a logging.Config writing to stderr.
func (c Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Log.Level
	lc.Format = c.Log.Format

	return lc
}

// StoreOptions converts the cache section into store options. It reports
// false when caching is disabled.
func (c Config) StoreOptions() ([]store.Option, bool) {
	if !c.Cache.Enabled {
		return nil, false
	}
	if c.Cache.InMemory {
		return []store.Option{store.WithInMemory()}, true
	}

	return []store.Option{store.WithDir(c.Cache.Dir)}, true
}
