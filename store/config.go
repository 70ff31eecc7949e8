// Package store persists solved burrows in BadgerDB so that a burrow is only
// ever searched once.
//
// Entries are keyed by the burrow's canonical key (burrow.Key.Bytes) under a
// configurable prefix and hold the minimum energy, whether the burrow was
// solvable, and the strategy that produced the answer.
package store

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// Config configures the result store.
type Config struct {
	// Dir is the directory to store data in.
	Dir string

	// InMemory keeps everything in memory (useful for testing).
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// KeyPrefix is added to all keys.
	KeyPrefix string

	// Logger is badger's own logger (nil silences it).
	Logger badger.Logger
}

// Option configures the result store.
type Option func(*Config)

// WithDir sets the data directory.
func WithDir(dir string) Option {
	return func(c *Config) {
		c.Dir = dir
	}
}

// WithInMemory enables in-memory storage.
func WithInMemory() Option {
	return func(c *Config) {
		c.InMemory = true
	}
}

// WithSyncWrites enables synchronous writes.
func WithSyncWrites() Option {
	return func(c *Config) {
		c.SyncWrites = true
	}
}

// WithKeyPrefix sets the key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *Config) {
		c.KeyPrefix = prefix
	}
}

// WithLogger sets badger's logger.
func WithLogger(logger badger.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// DefaultConfig returns an on-disk configuration without a directory; set
// one with WithDir or switch to WithInMemory.
func DefaultConfig() Config {
	return Config{KeyPrefix: "amphipod:"}
}

// Errors
var (
	// ErrOpenFailed indicates that the database could not be opened.
	ErrOpenFailed = errors.New("store: open failed")

	// ErrNoDir indicates an on-disk store without a directory.
	ErrNoDir = errors.New("store: directory required unless in memory")

	// ErrCorruptEntry indicates a stored value that does not decode.
	ErrCorruptEntry = errors.New("store: corrupt entry")
)

// openDB opens a BadgerDB database with the given configuration.
func openDB(cfg Config) (*badger.DB, error) {
	if !cfg.InMemory && cfg.Dir == "" {
		return nil, ErrNoDir
	}

	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(cfg.Logger)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Join(ErrOpenFailed, err)
	}

	return db, nil
}
