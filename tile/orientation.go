package tile

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/grid"
)

// Orientation selects one of the eight symmetries of a square grid.
// The grid is first mirrored up/down when Flip is set, then rotated
// counterclockwise by Rot quarter turns.
type Orientation struct {
	Flip bool
	Rot  int // 0..3
}

// Identity leaves a grid unchanged.
var Identity = Orientation{}

// NumOrientations is the order of the dihedral group of the square.
const NumOrientations = 8

var canonical = [NumOrientations]Orientation{
	{false, 0}, {false, 1}, {false, 2}, {false, 3},
	{true, 0}, {true, 1}, {true, 2}, {true, 3},
}

// Orientations returns all eight orientations in canonical order:
// (false,0..3) then (true,0..3). Searches iterate in this order, which makes
// "smallest rotation first" the tie-break everywhere.
func Orientations() [NumOrientations]Orientation {
	return canonical
}

// FromIndex returns the orientation at position i of the canonical order.
func FromIndex(i int) Orientation {
	return canonical[((i%NumOrientations)+NumOrientations)%NumOrientations]
}

// Index returns the position of o in the canonical order.
func (o Orientation) Index() int {
	o = o.normalize()
	if o.Flip {
		return 4 + o.Rot
	}

	return o.Rot
}

func (o Orientation) normalize() Orientation {
	o.Rot = ((o.Rot % 4) + 4) % 4
	return o
}

// Apply returns a new grid equal to g viewed under o. g is not modified.
func (o Orientation) Apply(g *grid.Grid[byte]) *grid.Grid[byte] {
	o = o.normalize()
	if o.Flip {
		return g.FlipUD().Rot90(o.Rot)
	}

	return g.Rot90(o.Rot)
}

// Then returns the orientation equivalent to applying o first and next second:
//
//	o.Then(next).Apply(g) == next.Apply(o.Apply(g))
//
// Derivation: with R a quarter turn and F the mirror, F·R^k = R^-k·F, so
// R^b·F^q·R^a·F^p = R^(b ± a)·F^(p xor q), the sign being minus when q is set.
func (o Orientation) Then(next Orientation) Orientation {
	o, next = o.normalize(), next.normalize()
	a := o.Rot
	if next.Flip {
		a = -a
	}

	return Orientation{Flip: o.Flip != next.Flip, Rot: (((next.Rot + a) % 4) + 4) % 4}
}

// Inverse returns the orientation that undoes o.
func (o Orientation) Inverse() Orientation {
	o = o.normalize()
	if o.Flip {
		// mirrors composed with rotations are involutions
		return o
	}

	return Orientation{Rot: (4 - o.Rot) % 4}
}

// String renders o as "flip/rot" for logs and test names.
func (o Orientation) String() string {
	o = o.normalize()
	if o.Flip {
		return fmt.Sprintf("flip+rot%d", o.Rot)
	}

	return fmt.Sprintf("rot%d", o.Rot)
}

// sources[o][s] is the raw side shown at view side s under orientation o,
// read off a marker grid whose edge midpoints name their side.
var sources = func() (t [NumOrientations][NumSides]Side) {
	marker, _ := grid.FromStrings(".T.", "L.R", ".B.")
	for i, o := range canonical {
		view := EdgesOf(o.Apply(marker))
		for _, s := range Sides {
			switch view[s][1] {
			case 'T':
				t[i][s] = Top
			case 'R':
				t[i][s] = Right
			case 'B':
				t[i][s] = Bottom
			default:
				t[i][s] = Left
			}
		}
	}

	return t
}()

// Source returns the raw side that o moves to view side s.
func (o Orientation) Source(s Side) Side {
	return sources[o.Index()][s]
}
