package tile

import "github.com/katalvlaran/jigsaw/grid"

// Side names one of the four borders of a tile, clockwise from the top.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// NumSides is the number of borders of a square tile.
const NumSides = 4

// Sides lists every side in clockwise order starting at Top.
var Sides = [NumSides]Side{Top, Right, Bottom, Left}

// Opposite returns the side facing s across a shared border.
func (s Side) Opposite() Side {
	return (s + 2) % NumSides
}

// Delta returns the (row, col) step from a position to its neighbour across s.
func (s Side) Delta() (dr, dc int) {
	switch s {
	case Top:
		return -1, 0
	case Right:
		return 0, 1
	case Bottom:
		return 1, 0
	default:
		return 0, -1
	}
}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "side?"
	}
}

// Edge is the ordered run of cells along one side of a tile.
type Edge = grid.Vector[byte]

// Edges holds a tile's four borders indexed by Side.
type Edges [NumSides]Edge

// Compatible reports whether a and b could join: equal as given or reversed.
func Compatible(a, b Edge) bool {
	return a.EqualEitherWay(b)
}

// Conjoined reports whether a and b are identical as given, the condition two
// placed neighbours must satisfy along their shared border.
func Conjoined(a, b Edge) bool {
	return a.Equal(b)
}

// EdgesOf reads the four borders of g in the directions documented on the package.
func EdgesOf(g *grid.Grid[byte]) Edges {
	return Edges{
		Top:    g.Row(0),
		Right:  g.Col(g.Cols() - 1),
		Bottom: g.Row(g.Rows() - 1),
		Left:   g.Col(0),
	}
}
