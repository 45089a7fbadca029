// Package puzzleio reads and writes the plain-text tile format:
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//	...
//
//	Tile 1951:
//	...
//
// Blocks are separated by blank lines. Cell symbols are configurable on
// input and translated to tile.Filled / tile.Empty; output always uses the
// canonical symbols.
package puzzleio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/tile"
)

var (
	// ErrSyntax indicates malformed input; the message carries the line number.
	ErrSyntax = errors.New("puzzleio: syntax error")
	// ErrDuplicateID indicates two blocks with the same tile id.
	ErrDuplicateID = errors.New("puzzleio: duplicate tile id")
	// ErrEmpty indicates input without any tile or pattern row.
	ErrEmpty = errors.New("puzzleio: empty input")
)

// Symbols maps input cell characters to the canonical ones.
type Symbols struct {
	Filled, Empty byte
}

// Canonical is the '#' / '.' symbol set.
var Canonical = Symbols{Filled: tile.Filled, Empty: tile.Empty}

func syntaxErr(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, line, fmt.Sprintf(format, args...))
}

// ParseTiles reads every tile block from r.
func ParseTiles(r io.Reader, sym Symbols) (map[int]*grid.Grid[byte], error) {
	tiles := make(map[int]*grid.Grid[byte])
	sc := bufio.NewScanner(r)

	var (
		id     int
		header int // line of the current header, 0 outside a block
		rows   [][]byte
		line   int
	)
	flush := func() error {
		if header == 0 {
			return nil
		}
		if len(rows) == 0 {
			return syntaxErr(header, "tile %d has no rows", id)
		}
		g, err := grid.FromRows(rows)
		if err != nil {
			return syntaxErr(header, "tile %d: %v", id, err)
		}
		tiles[id] = g
		header, rows = 0, nil

		return nil
	}

	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		switch {
		case text == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(text, "Tile "):
			if err := flush(); err != nil {
				return nil, err
			}
			n, err := parseHeader(text)
			if err != nil {
				return nil, syntaxErr(line, "%v", err)
			}
			if _, dup := tiles[n]; dup {
				return nil, fmt.Errorf("%w: %d at line %d", ErrDuplicateID, n, line)
			}
			id, header = n, line
		default:
			if header == 0 {
				return nil, syntaxErr(line, "row outside a tile block")
			}
			row, err := translate(text, sym, false)
			if err != nil {
				return nil, syntaxErr(line, "%v", err)
			}
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrEmpty
	}

	return tiles, nil
}

// parseHeader reads "Tile <id>:".
func parseHeader(text string) (int, error) {
	body, ok := strings.CutSuffix(strings.TrimPrefix(text, "Tile "), ":")
	if !ok {
		return 0, fmt.Errorf("header %q lacks ':'", text)
	}
	n, err := strconv.Atoi(strings.TrimSpace(body))
	if err != nil {
		return 0, fmt.Errorf("header %q: bad id", text)
	}

	return n, nil
}

// translate maps one input row to canonical symbols. With wildcards set,
// every non-filled character becomes tile.Empty.
func translate(text string, sym Symbols, wildcards bool) ([]byte, error) {
	row := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		switch ch := text[i]; {
		case ch == sym.Filled:
			row[i] = tile.Filled
		case ch == sym.Empty || wildcards:
			row[i] = tile.Empty
		default:
			return nil, fmt.Errorf("column %d: unexpected symbol %q", i+1, ch)
		}
	}

	return row, nil
}

// ParsePattern reads a pattern: filled symbols are must-be-filled cells,
// every other character is a wildcard. Short rows are padded with wildcards;
// leading and trailing blank lines are ignored.
func ParsePattern(r io.Reader, filled byte) (*grid.Grid[byte], error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		row, _ := translate(l+strings.Repeat(" ", width-len(l)), Symbols{Filled: filled}, true)
		rows[i] = row
	}

	return grid.FromRows(rows)
}

// WriteTiles renders tiles in ascending id order.
func WriteTiles(w io.Writer, tiles map[int]*grid.Grid[byte]) error {
	ids := make([]int, 0, len(tiles))
	for id := range tiles {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	bw := bufio.NewWriter(w)
	for i, id := range ids {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "Tile %d:\n", id)
		bw.WriteString(tiles[id].String())
	}

	return bw.Flush()
}
