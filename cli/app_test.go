package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/diagram"
)

const sample = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := New().WithOutput(&stdout, &stderr).ExecuteWithArgs(context.Background(), args)

	return stdout.String(), stderr.String(), err
}

func TestApp_Version(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "amphipod version")
}

func TestApp_Help(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "least total energy")
	assert.Contains(t, out, "solve")
	assert.Contains(t, out, "show")
}

func TestSolve_PartOne(t *testing.T) {
	for _, strategy := range []string{"depth-first", "best-first", "parallel"} {
		t.Run(strategy, func(t *testing.T) {
			out, _, err := run(t, "solve", "-p", "1", "-f", writeSample(t), "--strategy", strategy)
			require.NoError(t, err)
			assert.Equal(t, "12521\n", out)
		})
	}
}

func TestSolve_PartTwo(t *testing.T) {
	if testing.Short() {
		t.Skip("4-deep search is slow")
	}
	out, _, err := run(t, "solve", "--part", "2", "--file", writeSample(t), "--strategy", "best-first")
	require.NoError(t, err)
	assert.Equal(t, "44169\n", out)
}

func TestSolve_Steps(t *testing.T) {
	out, _, err := run(t, "solve", "-f", writeSample(t), "--steps")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Step 0 (energy 0):\n#############"))
	assert.Contains(t, out, "###A#B#C#D###")
	assert.Contains(t, out, "(energy 12521):")
	assert.True(t, strings.HasSuffix(out, "\n12521\n"))
}

func TestSolve_Cache(t *testing.T) {
	dir := t.TempDir()
	input := writeSample(t)

	out, _, err := run(t, "solve", "-f", input, "--cache-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "12521\n", out)

	out, logs, err := run(t, "solve", "-f", input, "--cache-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "12521\n", out)
	assert.Contains(t, logs, "served from cache")
}

func TestSolve_Config(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "amphipod.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("solver:\n  strategy: parallel\n  workers: 2\nlog:\n  level: debug\n  format: json\n"), 0o600))

	out, logs, err := run(t, "solve", "-f", writeSample(t), "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "12521\n", out)
	assert.Contains(t, logs, `"strategy":"parallel"`)
	assert.Contains(t, logs, `"run_id":"`)
}

func TestSolve_Errors(t *testing.T) {
	input := writeSample(t)

	_, _, err := run(t, "solve", "-p", "3", "-f", input)
	require.ErrorIs(t, err, ErrBadPart)

	_, _, err = run(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	_, _, err = run(t, "solve")
	require.Error(t, err, "--file is required")

	_, _, err = run(t, "solve", "-f", input, "--strategy", "a-star")
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("#####\n"), 0o600))
	_, _, err = run(t, "solve", "-f", empty)
	require.ErrorIs(t, err, diagram.ErrNoAgents)
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "show", "-f", writeSample(t))
	require.NoError(t, err)
	assert.Equal(t, sample, out)

	out, _, err = run(t, "show", "-p", "2", "-f", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "  #D#C#B#A#\n  #D#B#A#C#\n")
}

func TestRender(t *testing.T) {
	rooms, err := diagram.ParseString(sample)
	require.NoError(t, err)
	b, err := burrow.New(rooms)
	require.NoError(t, err)

	assert.Equal(t, b.String(), render(b, false))

	coloured := render(b, true)
	for _, glyph := range []string{"A", "B", "C", "D", "#", "."} {
		assert.Contains(t, coloured, glyph)
	}
}
