package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.bin")
	logger := slog.New(slog.DiscardHandler)

	require.NoError(t, run([]string{"write", path, "i32=1", "f64=2.5", "bool=true"}, logger))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(13), info.Size())

	require.NoError(t, run([]string{"read", path, "i32", "f64", "bool"}, logger))
	require.NoError(t, run([]string{"checksum", path}, logger))
}

func TestRunErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.bin")
	logger := slog.New(slog.DiscardHandler)

	assert.Error(t, run([]string{"write", path, "i32"}, logger))
	assert.Error(t, run([]string{"write", path, "c128=1"}, logger))
	assert.Error(t, run([]string{"write", path, "i8=300"}, logger))
	assert.Error(t, run([]string{"bogus"}, logger))

	require.NoError(t, run([]string{"write", path, "i32=1"}, logger))
	assert.Error(t, run([]string{"read", path, "f64"}, logger))
}

func TestRunDemo(t *testing.T) {
	assert.NoError(t, run([]string{"demo"}, slog.New(slog.DiscardHandler)))
	assert.NoError(t, run([]string{"version"}, slog.New(slog.DiscardHandler)))
}
