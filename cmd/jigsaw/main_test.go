package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/internal/config"
	"github.com/katalvlaran/jigsaw/internal/puzzleio"
	"github.com/katalvlaran/jigsaw/mosaic"
)

// writeReference stores the published puzzle in dir and returns its path.
func writeReference(t *testing.T, dir string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, puzzleio.WriteTiles(&buf, builder.Reference().Tiles))
	path := filepath.Join(dir, "tiles.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	return path
}

func TestRun_Reference(t *testing.T) {
	dir := t.TempDir()
	path := writeReference(t, dir)

	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", filepath.Join(dir, "none.yaml"), "-input", path}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "A: 20899048083289\nB: 273\n", out.String())
}

func TestRun_Stdin(t *testing.T) {
	var in, out bytes.Buffer
	require.NoError(t, puzzleio.WriteTiles(&in, builder.Reference().Tiles))

	err := run(context.Background(), []string{"-config", "", "-input", "-", "-log-level", "ERROR"}, &in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "B: 273")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	tiles := writeReference(t, dir)

	// the configured symbols translate X/o input; the pattern is a single cell
	text, err := os.ReadFile(tiles)
	require.NoError(t, err)
	swapped := strings.NewReplacer("#", "X", ".", "o").Replace(string(text))
	require.NoError(t, os.WriteFile(tiles, []byte(swapped), 0644))
	pattern := filepath.Join(dir, "dot.txt")
	require.NoError(t, os.WriteFile(pattern, []byte("X\n"), 0644))

	cfgPath := filepath.Join(dir, "jigsaw.yaml")
	cfg := fmt.Sprintf("input: %s\npattern: %s\nfilled: X\nempty: o\n", tiles, pattern)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath}, nil, &out))
	// every filled cell is its own match
	assert.Equal(t, "A: 20899048083289\nB: 0\n", out.String())
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	var gen bytes.Buffer
	err := run(context.Background(),
		[]string{"-config", "", "-generate", "4", "-seed", "3", "-monsters", "2"}, nil, &gen)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gen.String(), "Tile 1000:\n"))

	p, err := builder.Generate(4, 10, builder.WithSeed(3), builder.WithPattern(mosaic.Monster().Grid(), 2))
	require.NoError(t, err)
	want := uint64(1)
	for _, id := range []int{p.Layout[0][0], p.Layout[0][3], p.Layout[3][0], p.Layout[3][3]} {
		want *= uint64(id)
	}

	path := filepath.Join(dir, "gen.txt")
	require.NoError(t, os.WriteFile(path, gen.Bytes(), 0644))
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", "", "-input", path}, nil, &out))
	assert.True(t, strings.HasPrefix(out.String(), fmt.Sprintf("A: %d\n", want)), out.String())
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeReference(t, dir)

	err := run(context.Background(), []string{"-config", "", "-input", filepath.Join(dir, "missing.txt")}, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run(context.Background(), []string{"-config", "", "-input", path, "-max-states", "1"}, nil, &bytes.Buffer{})
	assert.ErrorContains(t, err, "could not assemble (border)")

	err = run(context.Background(), []string{"-config", "", "-input", path, "-max-states", "-3"}, nil, &bytes.Buffer{})
	assert.Error(t, err)

	err = run(context.Background(), []string{"-no-such-flag"}, nil, &bytes.Buffer{})
	assert.Error(t, err)

	var out bytes.Buffer
	err = run(context.Background(), []string{"-config", "", "-input", path, "-generate", "-2"}, nil, &out)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Empty(t, out.String())

	err = run(context.Background(), []string{"-config", "", "-generate", "3", "-monsters", "-1"}, nil, &out)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "-monsters=-1")
	assert.Empty(t, out.String())
}
