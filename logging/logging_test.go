package logging

import (
	"bytes"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger creates a logger that writes JSON to a buffer.
func testLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return New(Config{Level: "trace", Format: "json", Output: buf}), buf
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "info", config.Level)
	assert.Equal(t, "console", config.Format)
	assert.Equal(t, os.Stderr, config.Output)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"INFO", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
		{"unknown", bolt.INFO},
		{"", bolt.INFO},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"run id", RunID("run-123"), `"run_id":"run-123"`},
		{"strategy", Strategy("best-first"), `"strategy":"best-first"`},
		{"energy", Energy(12521), `"energy":12521`},
		{"found", Found(true), `"found":true`},
		{"depth", Depth(4), `"depth":4`},
		{"expanded", Expanded(77), `"expanded":77`},
		{"cached", Cached(true), `"cached":true`},
		{"duration", Duration(100 * time.Millisecond), `"duration_ms":100`},
		{"component", Component("solver"), `"component":"solver"`},
		{"error", ErrorField(errors.New("test error")), `"error":"test error"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := testLogger()
			require.NotNil(t, tt.field)
			tt.field(logger.Info()).Msg("test")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestErrorField_Nil(t *testing.T) {
	logger, buf := testLogger()
	ErrorField(nil)(logger.Info()).Msg("test")
	assert.NotContains(t, buf.String(), `"error"`)
}

func TestLogEvent_Chains(t *testing.T) {
	logger, buf := testLogger()
	NewEvent(logger.Info()).Add(RunID("run-1")).Add(Energy(44169)).Msg("solved")

	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-1"`)
	assert.Contains(t, out, `"energy":44169`)
	assert.Contains(t, out, "solved")
}

func TestNew_ConsoleFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: "debug", Format: "console", Output: buf})
	logger.Warn().Str("k", "v").Msg("console line")

	assert.Contains(t, buf.String(), "console line")
}

func TestGet_InitializesOnce(t *testing.T) {
	first := Get()
	require.NotNil(t, first)
	Init(Config{Level: "error"})
	assert.Same(t, first, Get())
	assert.NotNil(t, Discard())
}

func TestGet_ConcurrentFirstUse(t *testing.T) {
	once = sync.Once{}
	defaultLogger = nil

	const n = 8
	got := make([]*bolt.Logger, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Get()
		}()
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for _, l := range got[1:] {
		assert.Same(t, got[0], l)
	}
}
