package diagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/amphipod/burrow"
)

// Sentinel errors returned by the parser.
var (
	// ErrNoAgents indicates a diagram without a single agent letter.
	ErrNoAgents = errors.New("diagram: no agents found")

	// ErrRaggedRooms indicates a row that does not hold one agent per room.
	ErrRaggedRooms = errors.New("diagram: row does not hold exactly four agents")

	// ErrTooDeep indicates more rows than a room can hold.
	ErrTooDeep = errors.New("diagram: too many room rows")

	// ErrUnfoldDepth indicates Unfold was given rooms that are not two deep.
	ErrUnfoldDepth = errors.New("diagram: unfold needs rooms two deep")
)

// folded holds the two rows Unfold inserts, per room in burrow.Kinds order.
var folded = [burrow.RoomCount][2]burrow.Kind{
	{burrow.Desert, burrow.Desert},
	{burrow.Copper, burrow.Bronze},
	{burrow.Bronze, burrow.Amber},
	{burrow.Amber, burrow.Copper},
}

// Parse reads a diagram from r and returns the four rooms, mouth first.
func Parse(r io.Reader) ([][]burrow.Kind, error) {
	var (
		rows [][]burrow.Kind
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		var row []burrow.Kind
		for _, c := range sc.Text() {
			if k, ok := burrow.ParseKind(c); ok {
				row = append(row, k)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(row) != burrow.RoomCount {
			return nil, fmt.Errorf("%w: line %d has %d", ErrRaggedRooms, line, len(row))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("diagram: read: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNoAgents
	}
	if len(rows) > burrow.MaxRoomDepth {
		return nil, fmt.Errorf("%w: %d rows (max %d)", ErrTooDeep, len(rows), burrow.MaxRoomDepth)
	}

	rooms := make([][]burrow.Kind, burrow.RoomCount)
	for i := range rooms {
		rooms[i] = make([]burrow.Kind, len(rows))
		for d, row := range rows {
			rooms[i][d] = row[i]
		}
	}

	return rooms, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([][]burrow.Kind, error) {
	return Parse(strings.NewReader(s))
}

// Unfold returns the four-deep rooms hidden in a two-deep diagram. The input
// is left untouched.
func Unfold(rooms [][]burrow.Kind) ([][]burrow.Kind, error) {
	if len(rooms) != burrow.RoomCount {
		return nil, fmt.Errorf("%w: got %d rooms", burrow.ErrRoomCount, len(rooms))
	}
	out := make([][]burrow.Kind, burrow.RoomCount)
	for i, r := range rooms {
		if len(r) != 2 {
			return nil, fmt.Errorf("%w: room %s is %d deep", ErrUnfoldDepth, burrow.Kinds[i], len(r))
		}
		out[i] = []burrow.Kind{r[0], folded[i][0], folded[i][1], r[1]}
	}

	return out, nil
}

// Format renders rooms as a diagram with an empty corridor.
func Format(rooms [][]burrow.Kind) (string, error) {
	b, err := burrow.New(rooms)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
