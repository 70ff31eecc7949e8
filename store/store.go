package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/amphipod/burrow"
)

// entryVersion is the first byte of every encoded Entry.
const entryVersion = 1

// Entry is a stored search outcome.
type Entry struct {
	Energy   int    // minimum energy, zero when not Found
	Found    bool   // whether the sorted burrow was reachable
	Strategy string // strategy that produced the answer
}

// MarshalBinary encodes e as version, found flag, uvarint energy, strategy.
func (e Entry) MarshalBinary() ([]byte, error) {
	if e.Energy < 0 {
		return nil, fmt.Errorf("store: negative energy %d", e.Energy)
	}
	buf := make([]byte, 2, 2+binary.MaxVarintLen64+len(e.Strategy))
	buf[0] = entryVersion
	if e.Found {
		buf[1] = 1
	}
	buf = binary.AppendUvarint(buf, uint64(e.Energy))

	return append(buf, e.Strategy...), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (e *Entry) UnmarshalBinary(data []byte) error {
	if len(data) < 3 || data[0] != entryVersion || data[1] > 1 {
		return ErrCorruptEntry
	}
	energy, n := binary.Uvarint(data[2:])
	if n <= 0 {
		return ErrCorruptEntry
	}
	*e = Entry{
		Energy:   int(energy),
		Found:    data[1] == 1,
		Strategy: string(data[2+n:]),
	}

	return nil
}

// Store is a BadgerDB-backed table of solved burrows.
type Store struct {
	db        *badger.DB
	keyPrefix string
}

// Open creates a store with the given configuration.
func Open(cfg Config, opts ...Option) (*Store, error) {
	// Apply options
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, keyPrefix: cfg.KeyPrefix}, nil
}

// prefixKey adds the key prefix and result namespace.
func (s *Store) prefixKey(k burrow.Key) []byte {
	return append([]byte(s.keyPrefix+"result:"), k.Bytes()...)
}

// Get returns the entry stored for k, if any.
func (s *Store) Get(ctx context.Context, k burrow.Key) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.prefixKey(k))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}

	var e Entry
	if err = e.UnmarshalBinary(value); err != nil {
		return Entry{}, false, fmt.Errorf("%w: key %s", err, k)
	}

	return e, true, nil
}

// Put stores e for k, replacing any previous entry.
func (s *Store) Put(ctx context.Context, k burrow.Key, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := e.MarshalBinary()
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.prefixKey(k), value)
	})
}

// Delete removes the entry for k. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, k burrow.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.prefixKey(k))
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
