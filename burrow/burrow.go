package burrow

import (
	"fmt"
	"strings"
)

// Burrow is one immutable search state: a corridor plus four rooms.
// Successor burrows share every *Room their move did not touch.
type Burrow struct {
	corridor Corridor
	rooms    [RoomCount]*Room
	depth    int
}

// New builds the initial burrow from four occupant lists, one per room in
// Kinds order, each listed mouth first. All lists must have the same length.
func New(rooms [][]Kind) (*Burrow, error) {
	if len(rooms) != RoomCount {
		return nil, fmt.Errorf("%w: got %d", ErrRoomCount, len(rooms))
	}
	depth := len(rooms[0])
	for i, occupants := range rooms {
		if len(occupants) != depth {
			return nil, fmt.Errorf("%w: room %s has %d slots, room A has %d",
				ErrRoomSize, Kinds[i], len(occupants), depth)
		}
	}

	b := &Burrow{depth: depth}
	var err error
	for i, occupants := range rooms {
		if b.rooms[i], err = NewRoom(Kinds[i], occupants); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Solved returns the sorted burrow of the given depth.
func Solved(depth int) (*Burrow, error) {
	rooms := make([][]Kind, RoomCount)
	for i, k := range Kinds {
		rooms[i] = make([]Kind, depth)
		for d := range rooms[i] {
			rooms[i][d] = k
		}
	}

	return New(rooms)
}

// Corridor returns the corridor of b.
func (b *Burrow) Corridor() Corridor { return b.corridor }

// Room returns the room native to k.
func (b *Burrow) Room(k Kind) *Room {
	k.check()

	return b.rooms[k]
}

// Depth returns the shared depth of every room.
func (b *Burrow) Depth() int { return b.depth }

// IsSolved reports whether every room is filled with natives only.
func (b *Burrow) IsSolved() bool {
	for _, r := range b.rooms {
		if !r.IsComplete() {
			return false
		}
	}

	return true
}

// Equal reports whether b and o hold the same occupants in every slot.
func (b *Burrow) Equal(o *Burrow) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil || b.depth != o.depth || b.corridor != o.corridor {
		return false
	}
	for i := range b.rooms {
		if b.rooms[i] != o.rooms[i] && *b.rooms[i] != *o.rooms[i] {
			return false
		}
	}

	return true
}

// String renders b as the puzzle diagram.
func (b *Burrow) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for slot := 0; slot < CorridorLen; slot++ {
		sb.WriteRune(glyph(b.corridor.Occupant(slot)))
	}
	sb.WriteString("#\n")
	for d := 0; d < b.depth; d++ {
		if d == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for _, r := range b.rooms {
			sb.WriteRune(glyph(r.Occupant(d)))
			sb.WriteByte('#')
		}
		if d == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########")

	return sb.String()
}

func glyph(k Kind, ok bool) rune {
	if !ok {
		return '.'
	}

	return k.Rune()
}
