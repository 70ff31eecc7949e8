package burrow

import "fmt"

// Direction tells which way a Move carries its agent.
type Direction uint8

const (
	// IntoRoom moves a corridor occupant into its native room.
	IntoRoom Direction = iota

	// OutOfRoom moves the topmost occupant of a room into the corridor.
	OutOfRoom
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case IntoRoom:
		return "into-room"
	case OutOfRoom:
		return "out-of-room"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Move describes one legal transition between burrow states.
type Move struct {
	Kind      Kind      // the agent that moves
	Room      Kind      // native kind of the room involved
	Depth     int       // room slot entered or left
	Slot      int       // corridor slot left or entered
	Direction Direction // IntoRoom or OutOfRoom
	Energy    int       // energy the move costs
}

// String implements fmt.Stringer.
func (m Move) String() string {
	if m.Direction == IntoRoom {
		return fmt.Sprintf("%s: corridor %d → room %s[%d] (%d)", m.Kind, m.Slot, m.Room, m.Depth, m.Energy)
	}

	return fmt.Sprintf("%s: room %s[%d] → corridor %d (%d)", m.Kind, m.Room, m.Depth, m.Slot, m.Energy)
}

// Energy returns the cost for k to travel between corridor slot and depth of
// the room native to room. The cost is the same in both directions.
func Energy(k Kind, room Kind, depth int, slot int) int {
	dx := slot - Mouth(room)
	if dx < 0 {
		dx = -dx
	}

	return (dx + depth + 1) * k.StepCost()
}

// Moves enumerates every legal move from b: corridor-to-room moves first, in
// slot order, then room-to-corridor moves in room, depth and slot order.
// A solved burrow has no moves.
func (b *Burrow) Moves() []Move {
	var moves []Move

	// 1) Corridor → native room.
	for _, occ := range b.corridor.Occupied() {
		depth, ok := b.rooms[occ.Kind].CanInsert(occ.Kind)
		if !ok || !b.corridor.CanDepartToRoom(occ.Slot, occ.Kind) {
			continue
		}
		moves = append(moves, Move{
			Kind:      occ.Kind,
			Room:      occ.Kind,
			Depth:     depth,
			Slot:      occ.Slot,
			Direction: IntoRoom,
			Energy:    Energy(occ.Kind, occ.Kind, depth, occ.Slot),
		})
	}

	// 2) Room → every reachable corridor slot.
	var (
		d int
		k Kind
	)
	for _, r := range b.rooms {
		for d = 0; d < b.depth; d++ {
			if !r.CanRemove(d) {
				continue
			}
			k, _ = r.Occupant(d)
			for _, slot := range b.corridor.Reachable(r.native) {
				moves = append(moves, Move{
					Kind:      k,
					Room:      r.native,
					Depth:     d,
					Slot:      slot,
					Direction: OutOfRoom,
					Energy:    Energy(k, r.native, d, slot),
				})
			}
		}
	}

	return moves
}

// Apply returns the burrow reached by m. Only Room, Depth, Slot and Direction
// are read; the moving kind is taken from the burrow itself. Apply panics
// when m is not legal in b.
func (b *Burrow) Apply(m Move) *Burrow {
	next := &Burrow{corridor: b.corridor, rooms: b.rooms, depth: b.depth}
	room := b.Room(m.Room)

	switch m.Direction {
	case IntoRoom:
		k, ok := b.corridor.Occupant(m.Slot)
		if !ok {
			panic(fmt.Sprintf("burrow: corridor slot %d is empty", m.Slot))
		}
		next.corridor = b.corridor.RemoveToRoom(m.Slot, m.Room)
		next.rooms[m.Room] = room.Insert(k, m.Depth)
	case OutOfRoom:
		k, ok := room.Occupant(m.Depth)
		if !ok {
			panic(fmt.Sprintf("burrow: room %s depth %d is empty", m.Room, m.Depth))
		}
		next.rooms[m.Room] = room.Remove(m.Depth)
		next.corridor = b.corridor.InsertFromRoom(k, m.Room, m.Slot)
	default:
		panic(fmt.Sprintf("burrow: unknown direction %d", uint8(m.Direction)))
	}

	return next
}
