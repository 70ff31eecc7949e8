package burrow_test

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

// smallRooms is the canonical 2-deep sample, mouth first.
func smallRooms() [][]burrow.Kind {
	return [][]burrow.Kind{{B, A}, {C, D}, {B, C}, {D, A}}
}

// largeRooms is the canonical 4-deep sample, mouth first.
func largeRooms() [][]burrow.Kind {
	return [][]burrow.Kind{
		{B, D, D, A},
		{C, C, B, D},
		{B, B, A, C},
		{D, A, C, A},
	}
}

func mustBurrow(t *testing.T, rooms [][]burrow.Kind) *burrow.Burrow {
	t.Helper()
	b, err := burrow.New(rooms)
	require.NoError(t, err)

	return b
}

// out builds a room-to-corridor move; Apply derives the kind itself.
func out(room burrow.Kind, depth, slot int) burrow.Move {
	return burrow.Move{Room: room, Depth: depth, Slot: slot, Direction: burrow.OutOfRoom}
}

// findMove returns the generated move matching direction, room, depth and slot.
func findMove(t *testing.T, b *burrow.Burrow, dir burrow.Direction, room burrow.Kind, depth, slot int) burrow.Move {
	t.Helper()
	for _, m := range b.Moves() {
		if m.Direction == dir && m.Room == room && m.Depth == depth && m.Slot == slot {
			return m
		}
	}
	t.Fatalf("no %s move for room %s depth %d slot %d", dir, room, depth, slot)

	return burrow.Move{}
}
