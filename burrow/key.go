package burrow

import (
	"encoding/binary"
	"fmt"
)

// Key is the canonical, comparable encoding of a Burrow, meant for memo
// tables. Every cell takes four bits (0 vacant, kind+1 otherwise).
//
//	Hall:  corridor slot i at bits 4i..4i+3, room depth at bits 44..47
//	Rooms: room r, depth d at bits 4(r·MaxRoomDepth+d)..+3
//
// Two burrows encode to equal keys iff Equal reports true for them.
type Key struct {
	Hall  uint64
	Rooms uint64
}

const (
	cellBits   = 4
	depthShift = CorridorLen * cellBits

	// KeySize is the length of Key.Bytes.
	KeySize = 16
)

// Key returns the canonical key of b.
func (b *Burrow) Key() Key {
	var k Key
	for i, c := range b.corridor.slots {
		k.Hall |= uint64(c) << (cellBits * i)
	}
	k.Hall |= uint64(b.depth) << depthShift
	for r, room := range b.rooms {
		for d := 0; d < room.depth; d++ {
			k.Rooms |= uint64(room.cells[d]) << (cellBits * (r*MaxRoomDepth + d))
		}
	}

	return k
}

// Depth returns the room depth folded into k.
func (k Key) Depth() int { return int((k.Hall >> depthShift) & 0xF) }

// Bytes returns k as KeySize big-endian bytes.
func (k Key) Bytes() []byte {
	buf := make([]byte, KeySize)
	binary.BigEndian.PutUint64(buf[:8], k.Hall)
	binary.BigEndian.PutUint64(buf[8:], k.Rooms)

	return buf
}

// String implements fmt.Stringer.
func (k Key) String() string { return fmt.Sprintf("%016x%016x", k.Hall, k.Rooms) }

// KeyFromBytes decodes a key produced by Key.Bytes.
func KeyFromBytes(buf []byte) (Key, error) {
	if len(buf) != KeySize {
		return Key{}, fmt.Errorf("%w: %d bytes", ErrKeyLength, len(buf))
	}

	return Key{
		Hall:  binary.BigEndian.Uint64(buf[:8]),
		Rooms: binary.BigEndian.Uint64(buf[8:]),
	}, nil
}
