package diagram_test

import (
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/diagram"
)

const (
	A = burrow.Amber
	B = burrow.Bronze
	C = burrow.Copper
	D = burrow.Desert
)

const sample = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func TestParse_Sample(t *testing.T) {
	rooms, err := diagram.ParseString(sample)
	require.NoError(t, err)
	assert.Equal(t, [][]burrow.Kind{{B, A}, {C, D}, {B, C}, {D, A}}, rooms)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", diagram.ErrNoAgents},
		{"walls only", "#############\n#...........#\n", diagram.ErrNoAgents},
		{"short row", "###B#C#B###\n", diagram.ErrRaggedRooms},
		{"occupied corridor", "#.A.........#\n###B#C#B#D###\n", diagram.ErrRaggedRooms},
		{"five rows", "#A#B#C#D#\n#A#B#C#D#\n#A#B#C#D#\n#A#B#C#D#\n#A#B#C#D#\n", diagram.ErrTooDeep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := diagram.ParseString(tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := diagram.Parse(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}

func TestUnfold(t *testing.T) {
	rooms, err := diagram.ParseString(sample)
	require.NoError(t, err)

	deep, err := diagram.Unfold(rooms)
	require.NoError(t, err)
	assert.Equal(t, [][]burrow.Kind{
		{B, D, D, A},
		{C, C, B, D},
		{B, B, A, C},
		{D, A, C, A},
	}, deep)
	assert.Len(t, rooms[0], 2, "input untouched")

	_, err = diagram.Unfold(deep)
	require.ErrorIs(t, err, diagram.ErrUnfoldDepth)
	_, err = diagram.Unfold(rooms[:2])
	require.ErrorIs(t, err, burrow.ErrRoomCount)
}

func TestFormat_RoundTrip(t *testing.T) {
	rooms, err := diagram.ParseString(sample)
	require.NoError(t, err)
	deep, err := diagram.Unfold(rooms)
	require.NoError(t, err)

	for _, rs := range [][][]burrow.Kind{rooms, deep} {
		text, err := diagram.Format(rs)
		require.NoError(t, err)
		back, err := diagram.ParseString(text)
		require.NoError(t, err)
		assert.Equal(t, rs, back)
	}

	out, err := diagram.Format(rooms)
	require.NoError(t, err)
	assert.Equal(t, sample[:len(sample)-1], out)

	_, err = diagram.Format(rooms[:3])
	require.ErrorIs(t, err, burrow.ErrRoomCount)
}
