package burrow

import "fmt"

// Room is a fixed-capacity side room reserved for its native kind.
// Slot 0 is nearest the corridor; slot Depth()-1 is the closed end.
// A Room is immutable once built, so Burrows may share it freely.
type Room struct {
	native Kind
	depth  int
	cells  [MaxRoomDepth]cell
}

// NewRoom builds a fully occupied room. Occupants are listed mouth first.
func NewRoom(native Kind, occupants []Kind) (*Room, error) {
	if !native.Valid() {
		return nil, fmt.Errorf("%w: native %d", ErrInvalidKind, uint8(native))
	}
	if len(occupants) == 0 || len(occupants) > MaxRoomDepth {
		return nil, fmt.Errorf("%w: %d slots (max %d)", ErrRoomDepth, len(occupants), MaxRoomDepth)
	}

	r := &Room{native: native, depth: len(occupants)}
	for d, k := range occupants {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: room %s slot %d holds %d", ErrInvalidKind, native, d, uint8(k))
		}
		r.cells[d] = occupied(k)
	}
	r.checkRep()

	return r, nil
}

// Native returns the kind this room is reserved for.
func (r *Room) Native() Kind { return r.native }

// Depth returns the number of slots in the room.
func (r *Room) Depth() int { return r.depth }

// Occupant returns the kind at depth, if any.
func (r *Room) Occupant(depth int) (Kind, bool) {
	r.checkDepth(depth)

	return r.cells[depth].kind()
}

// IsNative reports whether depth holds an agent of the room's native kind.
func (r *Room) IsNative(depth int) bool {
	k, ok := r.Occupant(depth)

	return ok && k == r.native
}

// IsVacant reports whether depth is empty.
func (r *Room) IsVacant(depth int) bool {
	r.checkDepth(depth)

	return r.cells[depth] == vacant
}

// IsComplete reports whether every slot holds a native.
func (r *Room) IsComplete() bool {
	for d := 0; d < r.depth; d++ {
		if !r.IsNative(d) {
			return false
		}
	}

	return true
}

// CanRemove reports whether the occupant at depth may leave: nothing may sit
// above it, and a native may only leave when a foreigner sits somewhere below.
func (r *Room) CanRemove(depth int) bool {
	if r.IsVacant(depth) {
		return false
	}
	for d := 0; d < depth; d++ {
		if !r.IsVacant(d) {
			return false
		}
	}
	if !r.IsNative(depth) {
		return true
	}
	for d := depth + 1; d < r.depth; d++ {
		if !r.IsNative(d) {
			return true
		}
	}

	return false
}

// CanInsert returns the slot k would settle into, or false when k is not
// native or the room still holds a foreigner.
func (r *Room) CanInsert(k Kind) (int, bool) {
	if k != r.native {
		return 0, false
	}
	for d := 0; d < r.depth; d++ {
		if !r.IsVacant(d) && !r.IsNative(d) {
			return 0, false
		}
	}
	for d := r.depth - 1; d >= 0; d-- {
		if r.IsVacant(d) {
			return d, true
		}
	}

	return 0, false
}

// Insert returns a copy of the room with k placed at depth.
// It panics unless CanInsert(k) yields exactly depth.
func (r *Room) Insert(k Kind, depth int) *Room {
	r.checkDepth(depth)
	if want, ok := r.CanInsert(k); !ok || want != depth {
		panic(fmt.Sprintf("burrow: invalid insert of %s into room %s at depth %d", k, r.native, depth))
	}
	next := *r
	next.cells[depth] = occupied(k)
	next.checkRep()

	return &next
}

// Remove returns a copy of the room with the occupant at depth gone.
// It panics unless CanRemove(depth) holds.
func (r *Room) Remove(depth int) *Room {
	if !r.CanRemove(depth) {
		panic(fmt.Sprintf("burrow: invalid remove from room %s at depth %d", r.native, depth))
	}
	next := *r
	next.cells[depth] = vacant
	next.checkRep()

	return &next
}

// checkRep asserts the no-floating-occupant invariant: an occupied slot is
// never followed, toward the closed end, by a vacant one.
func (r *Room) checkRep() {
	for d := 0; d+1 < r.depth; d++ {
		if r.cells[d] != vacant && r.cells[d+1] == vacant {
			panic(fmt.Sprintf("burrow: room %s has a floating occupant at depth %d", r.native, d))
		}
	}
	for d := r.depth; d < MaxRoomDepth; d++ {
		if r.cells[d] != vacant {
			panic(fmt.Sprintf("burrow: room %s holds an occupant beyond its depth", r.native))
		}
	}
}

func (r *Room) checkDepth(depth int) {
	if depth < 0 || depth >= r.depth {
		panic(fmt.Sprintf("burrow: depth %d out of room range", depth))
	}
}
