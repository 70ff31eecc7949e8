package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/diagram"
)

// ErrBadPart indicates a --part value other than 1 or 2.
var ErrBadPart = errors.New("part must be either 1 or 2")

// readRooms parses the diagram at path ("-" reads stdin) and, for part 2,
// unfolds a two-deep diagram into the four-deep one.
func readRooms(path string, stdin io.Reader, part int) ([][]burrow.Kind, error) {
	if part != 1 && part != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadPart, part)
	}

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	rooms, err := diagram.Parse(r)
	if err != nil {
		return nil, err
	}
	if part == 2 && len(rooms[0]) != burrow.MaxRoomDepth {
		return diagram.Unfold(rooms)
	}

	return rooms, nil
}
