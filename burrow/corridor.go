package burrow

import "fmt"

// mouths holds the corridor slot directly outside each room, indexed by Kind.
var mouths = [RoomCount]int{2, 4, 6, 8}

// Mouth returns the corridor slot outside the room native to k.
func Mouth(k Kind) int {
	k.check()

	return mouths[k]
}

// IsMouth reports whether slot lies directly outside a room.
func IsMouth(slot int) bool {
	for _, m := range mouths {
		if m == slot {
			return true
		}
	}

	return false
}

// Occupant pairs a corridor slot with the kind standing in it.
type Occupant struct {
	Slot int
	Kind Kind
}

// Corridor is the shared linear hallway. It is a value type: every mutation
// returns a new Corridor and leaves the receiver untouched. The zero value is
// an empty corridor.
type Corridor struct {
	slots [CorridorLen]cell
}

// Occupant returns the kind standing at slot, if any.
func (c Corridor) Occupant(slot int) (Kind, bool) {
	checkSlot(slot)

	return c.slots[slot].kind()
}

// Occupied lists every filled slot in ascending slot order.
func (c Corridor) Occupied() []Occupant {
	var out []Occupant
	for i, s := range c.slots {
		if k, ok := s.kind(); ok {
			out = append(out, Occupant{Slot: i, Kind: k})
		}
	}

	return out
}

// clear reports whether every slot in [lo, hi] other than skip is vacant.
func (c Corridor) clear(lo, hi, skip int) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i++ {
		if i != skip && c.slots[i] != vacant {
			return false
		}
	}

	return true
}

// CanAcceptFromRoom reports whether an agent leaving the room native to room
// may stop at slot: slot must not be a mouth, and slot plus every slot between
// it and the mouth must be vacant.
func (c Corridor) CanAcceptFromRoom(room Kind, slot int) bool {
	checkSlot(slot)
	if IsMouth(slot) {
		return false
	}

	return c.clear(slot, Mouth(room), -1)
}

// CanDepartToRoom reports whether the occupant at slot belongs to room and
// every slot between it and the room's mouth is vacant. The departing slot
// itself is excluded from the check.
func (c Corridor) CanDepartToRoom(slot int, room Kind) bool {
	checkSlot(slot)
	k, ok := c.slots[slot].kind()
	if !ok || k != room {
		return false
	}

	return c.clear(slot, Mouth(room), slot)
}

// Reachable returns every slot an agent leaving the room native to room could
// stop at: walking left, then right, from the mouth, skipping mouths and
// stopping at the first occupied slot in each direction.
func (c Corridor) Reachable(room Kind) []int {
	start := Mouth(room)
	out := make([]int, 0, CorridorLen-RoomCount)
	for i := start - 1; i >= 0; i-- {
		if IsMouth(i) {
			continue
		}
		if c.slots[i] != vacant {
			break
		}
		out = append(out, i)
	}
	for i := start + 1; i < CorridorLen; i++ {
		if IsMouth(i) {
			continue
		}
		if c.slots[i] != vacant {
			break
		}
		out = append(out, i)
	}

	return out
}

// RemoveToRoom returns a corridor with the occupant at slot gone into the room
// native to room. It panics unless CanDepartToRoom(slot, room) holds.
func (c Corridor) RemoveToRoom(slot int, room Kind) Corridor {
	if !c.CanDepartToRoom(slot, room) {
		panic(fmt.Sprintf("burrow: corridor path from slot %d to room %s is blocked", slot, room))
	}
	c.slots[slot] = vacant
	c.checkRep()

	return c
}

// InsertFromRoom returns a corridor with k standing at slot after leaving the
// room native to room. It panics unless CanAcceptFromRoom(room, slot) holds.
func (c Corridor) InsertFromRoom(k Kind, room Kind, slot int) Corridor {
	k.check()
	if !c.CanAcceptFromRoom(room, slot) {
		panic(fmt.Sprintf("burrow: corridor path from room %s to slot %d is blocked", room, slot))
	}
	c.slots[slot] = occupied(k)
	c.checkRep()

	return c
}

// checkRep asserts that no mouth holds an occupant.
func (c Corridor) checkRep() {
	for _, m := range mouths {
		if c.slots[m] != vacant {
			panic(fmt.Sprintf("burrow: corridor mouth %d is occupied", m))
		}
	}
}

func checkSlot(slot int) {
	if slot < 0 || slot >= CorridorLen {
		panic(fmt.Sprintf("burrow: corridor slot %d out of range", slot))
	}
}
