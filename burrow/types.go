package burrow

import (
	"errors"
	"fmt"
)

// Topology constants.
const (
	// CorridorLen is the number of corridor slots.
	CorridorLen = 11

	// RoomCount is the number of side rooms, one per Kind.
	RoomCount = 4

	// MaxRoomDepth is the deepest room a Burrow supports.
	MaxRoomDepth = 4
)

// Sentinel errors returned by burrow constructors.
var (
	// ErrRoomCount indicates that New was not given exactly RoomCount rooms.
	ErrRoomCount = errors.New("burrow: exactly four rooms are required")

	// ErrRoomSize indicates that the rooms passed to New have differing lengths.
	ErrRoomSize = errors.New("burrow: rooms do not match in size")

	// ErrRoomDepth indicates a room that is empty or deeper than MaxRoomDepth.
	ErrRoomDepth = errors.New("burrow: room depth out of range")

	// ErrInvalidKind indicates an occupant outside the four known kinds.
	ErrInvalidKind = errors.New("burrow: invalid agent kind")

	// ErrKeyLength indicates a serialized Key of the wrong length.
	ErrKeyLength = errors.New("burrow: serialized key has wrong length")
)

// Kind identifies one of the four agent kinds. The zero value is Amber.
type Kind uint8

const (
	// Amber spends 1 energy per step and lives in the first room.
	Amber Kind = iota

	// Bronze spends 10 energy per step and lives in the second room.
	Bronze

	// Copper spends 100 energy per step and lives in the third room.
	Copper

	// Desert spends 1000 energy per step and lives in the fourth room.
	Desert
)

// Kinds lists every kind in room order: room i is native to Kinds[i].
var Kinds = [RoomCount]Kind{Amber, Bronze, Copper, Desert}

var stepCosts = [RoomCount]int{1, 10, 100, 1000}

// StepCost returns the energy a single step of this kind costs.
func (k Kind) StepCost() int {
	k.check()

	return stepCosts[k]
}

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool { return k < RoomCount }

// Rune returns the diagram letter for k ('A'..'D').
func (k Kind) Rune() rune {
	k.check()

	return rune('A' + k)
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return string(k.Rune())
}

// ParseKind maps a diagram letter to its Kind.
func ParseKind(r rune) (Kind, bool) {
	if r < 'A' || r > 'D' {
		return 0, false
	}

	return Kind(r - 'A'), true
}

func (k Kind) check() {
	if !k.Valid() {
		panic(fmt.Sprintf("burrow: invalid kind %d", uint8(k)))
	}
}

// cell is one slot of the corridor or a room: 0 is vacant, otherwise kind+1.
type cell uint8

const vacant cell = 0

func occupied(k Kind) cell { return cell(k) + 1 }

func (c cell) kind() (Kind, bool) {
	if c == vacant {
		return 0, false
	}

	return Kind(c - 1), true
}
