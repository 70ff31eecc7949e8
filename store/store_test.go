package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.DefaultConfig(), store.WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func sampleKey(t *testing.T) burrow.Key {
	t.Helper()
	b, err := burrow.New([][]burrow.Kind{
		{burrow.Bronze, burrow.Amber},
		{burrow.Copper, burrow.Desert},
		{burrow.Bronze, burrow.Copper},
		{burrow.Desert, burrow.Amber},
	})
	require.NoError(t, err)

	return b.Key()
}

func TestStore_PutGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	k := sampleKey(t)

	_, found, err := s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, found)

	want := store.Entry{Energy: 12521, Found: true, Strategy: "depth-first"}
	require.NoError(t, s.Put(ctx, k, want))

	got, found, err := s.Get(ctx, k)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)

	// Overwrite
	want.Strategy = "best-first"
	require.NoError(t, s.Put(ctx, k, want))
	got, _, err = s.Get(ctx, k)
	require.NoError(t, err)
	assert.Equal(t, "best-first", got.Strategy)

	// Delete
	require.NoError(t, s.Delete(ctx, k))
	_, found, err = s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_KeysAreDistinct(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	solved, err := burrow.Solved(2)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, sampleKey(t), store.Entry{Energy: 12521, Found: true}))
	_, found, err := s.Get(ctx, solved.Key())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_PersistsOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	k := sampleKey(t)

	s, err := store.Open(store.DefaultConfig(), store.WithDir(dir), store.WithSyncWrites())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, k, store.Entry{Found: false, Strategy: "parallel"}))
	require.NoError(t, s.Close())

	s, err = store.Open(store.DefaultConfig(), store.WithDir(dir))
	require.NoError(t, err)
	defer s.Close()
	got, found, err := s.Get(ctx, k)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, store.Entry{Strategy: "parallel"}, got)
}

func TestStore_KeyPrefixIsolates(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	k := sampleKey(t)

	s, err := store.Open(store.Config{}, store.WithDir(dir), store.WithKeyPrefix("one:"))
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, k, store.Entry{Energy: 1, Found: true}))
	require.NoError(t, s.Close())

	s, err = store.Open(store.Config{}, store.WithDir(dir), store.WithKeyPrefix("two:"))
	require.NoError(t, err)
	defer s.Close()
	_, found, err := s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Errors(t *testing.T) {
	_, err := store.Open(store.DefaultConfig())
	require.ErrorIs(t, err, store.ErrNoDir)

	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = s.Get(ctx, sampleKey(t))
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Put(ctx, sampleKey(t), store.Entry{}), context.Canceled)

	err = s.Put(context.Background(), sampleKey(t), store.Entry{Energy: -1})
	require.Error(t, err)
}

func TestEntry_Binary(t *testing.T) {
	for _, e := range []store.Entry{
		{},
		{Energy: 44169, Found: true, Strategy: "best-first"},
		{Energy: 1 << 40, Found: true},
	} {
		data, err := e.MarshalBinary()
		require.NoError(t, err)
		var got store.Entry
		require.NoError(t, got.UnmarshalBinary(data))
		assert.Equal(t, e, got)
	}

	var e store.Entry
	for _, bad := range [][]byte{nil, {1}, {2, 0, 0}, {1, 7, 0}, {1, 0, 0x80}} {
		require.ErrorIs(t, e.UnmarshalBinary(bad), store.ErrCorruptEntry, "%v", bad)
	}
}
