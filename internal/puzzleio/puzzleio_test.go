package puzzleio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/internal/puzzleio"
	"github.com/katalvlaran/jigsaw/mosaic"
)

const small = `Tile 7:
#..
.#.
..#

Tile 3:
###
#.#
###
`

func TestParseTiles(t *testing.T) {
	tiles, err := puzzleio.ParseTiles(strings.NewReader(small), puzzleio.Canonical)
	require.NoError(t, err)
	require.Len(t, tiles, 2)
	assert.Equal(t, "#..\n.#.\n..#\n", tiles[7].String())
	assert.Equal(t, 8, tiles[3].Count('#'))
}

func TestParseTiles_Symbols(t *testing.T) {
	in := "Tile 1:\r\nXoo\r\noXo\r\nooX\r\n"
	tiles, err := puzzleio.ParseTiles(strings.NewReader(in), puzzleio.Symbols{Filled: 'X', Empty: 'o'})
	require.NoError(t, err)
	assert.Equal(t, "#..\n.#.\n..#\n", tiles[1].String())
}

func TestParseTiles_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"row outside block", "#..\n", puzzleio.ErrSyntax, "line 1"},
		{"missing colon", "Tile 4\n#..\n", puzzleio.ErrSyntax, "line 1"},
		{"bad id", "Tile x:\n", puzzleio.ErrSyntax, "line 1"},
		{"bad symbol", "Tile 4:\n#..\n.?.\n", puzzleio.ErrSyntax, "line 3"},
		{"ragged", "Tile 4:\n#..\n.#\n", puzzleio.ErrSyntax, "line 1"},
		{"no rows", "Tile 4:\n\nTile 5:\n#\n", puzzleio.ErrSyntax, "line 1"},
		{"duplicate", "Tile 4:\n#\n\nTile 4:\n#\n", puzzleio.ErrDuplicateID, "line 4"},
		{"empty", "\n\n", puzzleio.ErrEmpty, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := puzzleio.ParseTiles(strings.NewReader(tt.in), puzzleio.Canonical)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestWriteTiles_RoundTrip(t *testing.T) {
	ref := builder.Reference().Tiles

	var buf bytes.Buffer
	require.NoError(t, puzzleio.WriteTiles(&buf, ref))
	assert.True(t, strings.HasPrefix(buf.String(), "Tile 1171:\n"))

	back, err := puzzleio.ParseTiles(&buf, puzzleio.Canonical)
	require.NoError(t, err)
	require.Len(t, back, len(ref))
	for id, g := range ref {
		assert.True(t, g.Equal(back[id]), "tile %d", id)
	}
}

func TestParsePattern_Monster(t *testing.T) {
	// trailing spaces trimmed by an editor must not change the pattern
	in := "\n" +
		"                  #\n" +
		"#    ##    ##    ###\n" +
		" #  #  #  #  #  #\n\n"
	g, err := puzzleio.ParsePattern(strings.NewReader(in), '#')
	require.NoError(t, err)
	assert.True(t, g.Equal(mosaic.Monster().Grid()))

	p, err := mosaic.NewPattern(g, '#')
	require.NoError(t, err)
	assert.Equal(t, 15, p.Size())
}

func TestParsePattern_Errors(t *testing.T) {
	_, err := puzzleio.ParsePattern(strings.NewReader(" \n\n"), '#')
	assert.ErrorIs(t, err, puzzleio.ErrEmpty)
}
