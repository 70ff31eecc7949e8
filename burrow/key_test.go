package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
)

// expand collects every burrow reachable from root within levels moves.
func expand(root *burrow.Burrow, levels int) []*burrow.Burrow {
	all := []*burrow.Burrow{root}
	frontier := all
	for i := 0; i < levels; i++ {
		var next []*burrow.Burrow
		for _, b := range frontier {
			for _, m := range b.Moves() {
				next = append(next, b.Apply(m))
			}
		}
		all = append(all, next...)
		frontier = next
	}

	return all
}

func TestKey_EqualBurrowsEqualKeys(t *testing.T) {
	a := mustBurrow(t, largeRooms())
	b := mustBurrow(t, largeRooms())
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, 4, a.Key().Depth())
}

func TestKey_InjectiveOverReachableStates(t *testing.T) {
	states := expand(mustBurrow(t, smallRooms()), 3)
	byKey := make(map[burrow.Key]*burrow.Burrow, len(states))
	for _, s := range states {
		if prev, ok := byKey[s.Key()]; ok {
			require.True(t, prev.Equal(s), "distinct burrows share key %s:\n%s\n%s", s.Key(), prev, s)
			continue
		}
		byKey[s.Key()] = s
	}

	// Distinct keys must never describe equal burrows.
	seen := make([]*burrow.Burrow, 0, len(byKey))
	for _, s := range byKey {
		seen = append(seen, s)
	}
	for i := 0; i < len(seen) && i < 200; i++ {
		for j := i + 1; j < len(seen) && j < 200; j++ {
			assert.False(t, seen[i].Equal(seen[j]))
		}
	}
}

func TestKey_SuccessorsAreDistinct(t *testing.T) {
	b := mustBurrow(t, largeRooms())
	keys := map[burrow.Key]bool{b.Key(): true}
	for _, m := range b.Moves() {
		k := b.Apply(m).Key()
		assert.False(t, keys[k], "move %s collides", m)
		keys[k] = true
	}
}

func TestKey_DepthIsPartOfKey(t *testing.T) {
	shallow := mustBurrow(t, [][]burrow.Kind{{A}, {B}, {C}, {D}})
	deep := mustBurrow(t, [][]burrow.Kind{{A, A}, {B, B}, {C, C}, {D, D}})
	assert.NotEqual(t, shallow.Key(), deep.Key())
}

func TestKey_Bytes(t *testing.T) {
	k := mustBurrow(t, smallRooms()).Key()
	buf := k.Bytes()
	require.Len(t, buf, burrow.KeySize)

	got, err := burrow.KeyFromBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, k, got)

	_, err = burrow.KeyFromBytes(buf[:3])
	require.ErrorIs(t, err, burrow.ErrKeyLength)
}
