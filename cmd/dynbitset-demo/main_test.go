package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynbitset/internal/logging"
)

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Out = filepath.Join(t.TempDir(), "1.out")

	require.NoError(t, run(context.Background(), cfg, logging.NoopLogger()))

	data, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)

	input := strings.Repeat("101", 32)
	want := []string{
		"Size: 96 | " + input,
		"Size: 64 | " + input[32:],
		"Size: 4 | 0010",
		"ones: 2",
		"Size: 5 | 11101",
		"Size: 4 | 1110",
		"Size: 7 | 0001110",
		"Size: 3 | 100",
		"Size: 0 | ",
		"Size: 48 | " + strings.Repeat("1", 48),
		"all: true none: false",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestRunSequential(t *testing.T) {
	dir := t.TempDir()

	parallel := DefaultConfig()
	parallel.Out = filepath.Join(dir, "parallel.out")
	require.NoError(t, run(context.Background(), parallel, logging.NoopLogger()))

	sequential := parallel
	sequential.Parallel = 1
	sequential.Out = filepath.Join(dir, "sequential.out")
	require.NoError(t, run(context.Background(), sequential, logging.NoopLogger()))

	a, err := os.ReadFile(parallel.Out)
	require.NoError(t, err)
	b, err := os.ReadFile(sequential.Out)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRunNegativeShift(t *testing.T) {
	var logs bytes.Buffer

	cfg := DefaultConfig()
	cfg.Out = filepath.Join(t.TempDir(), "1.out")
	cfg.Shift = -1

	err := run(context.Background(), cfg, logging.NewTextLogger(&logs, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario doubled-shift")
	assert.Contains(t, logs.String(), "run failed")

	_, statErr := os.Stat(cfg.Out)
	assert.True(t, os.IsNotExist(statErr), "no output on failure")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.Out = filepath.Join(t.TempDir(), "1.out")

	assert.ErrorIs(t, run(ctx, cfg, logging.NoopLogger()), context.Canceled)
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer

	cfg, err := parseFlags([]string{"-out", "x.out", "-shift", "8", "-parallel", "2", "-log-format", "json"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "x.out", cfg.Out)
	assert.Equal(t, 8, cfg.Shift)
	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, "json", cfg.LogFormat)

	_, err = parseFlags([]string{"-parallel", "0"}, &stderr)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-bogus"}, &stderr)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := DefaultConfig()
	_, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	cfg.LogFormat = "xml"
	_, err = newLogger(cfg, &buf)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	_, err = newLogger(cfg, &buf)
	assert.Error(t, err)
}
