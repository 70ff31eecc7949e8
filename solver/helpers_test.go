package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
)

const (
	A = burrow.Amber
	B = burrow.Bronze
	C = burrow.Copper
	D = burrow.Desert
)

func mustBurrow(t testing.TB, rooms [][]burrow.Kind) *burrow.Burrow {
	t.Helper()
	b, err := burrow.New(rooms)
	require.NoError(t, err)

	return b
}

// smallSample is the canonical 2-deep burrow; its minimum energy is 12521.
func smallSample(t testing.TB) *burrow.Burrow {
	return mustBurrow(t, [][]burrow.Kind{{B, A}, {C, D}, {B, C}, {D, A}})
}

// largeSample is the canonical 4-deep burrow; its minimum energy is 44169.
func largeSample(t testing.TB) *burrow.Burrow {
	return mustBurrow(t, [][]burrow.Kind{
		{B, D, D, A},
		{C, C, B, D},
		{B, B, A, C},
		{D, A, C, A},
	})
}

// deadlocked returns a burrow where Desert (slot 3) and Amber (slot 5) block
// each other's way home forever.
func deadlocked(t testing.TB) *burrow.Burrow {
	b := mustBurrow(t, [][]burrow.Kind{{D}, {B}, {C}, {A}})
	b = b.Apply(burrow.Move{Room: A, Depth: 0, Slot: 3, Direction: burrow.OutOfRoom})

	return b.Apply(burrow.Move{Room: D, Depth: 0, Slot: 5, Direction: burrow.OutOfRoom})
}

// requireValidPath checks that path runs from start to a sorted burrow, one
// legal move at a time, and that the moves cost energy in total.
func requireValidPath(t *testing.T, start *burrow.Burrow, path []*burrow.Burrow, energy int) {
	t.Helper()
	require.NotEmpty(t, path)
	require.True(t, path[0].Equal(start), "path must begin at the initial burrow")
	require.True(t, path[len(path)-1].IsSolved(), "path must end sorted")

	total := 0
	for i := 1; i < len(path); i++ {
		prev, next := path[i-1], path[i]
		found := false
		for _, m := range prev.Moves() {
			if prev.Apply(m).Equal(next) {
				total += m.Energy
				found = true
				break
			}
		}
		require.True(t, found, "no legal move links step %d to step %d:\n%s\n%s", i-1, i, prev, next)
	}
	require.Equal(t, energy, total)
}
