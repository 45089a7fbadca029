// Package tile models a jigsaw tile: an identified, immutable square symbol
// grid plus a selectable orientation.
//
// Orientation is one of the eight elements of the dihedral group of the
// square: an optional up/down mirror followed by 0–3 counterclockwise quarter
// turns. Applying an Orientation to a grid is always computed from the raw
// grid, so edges can never drift from the orientation that produced them.
//
// Edges are read in a fixed direction so that two grid-adjacent tiles present
// identical sequences along their shared border:
//
//	Top    row 0,      left → right
//	Right  last col,   top  → bottom
//	Bottom last row,   left → right
//	Left   col 0,      top  → bottom
//
// Two edges are compatible when they are equal as given or reversed (used for
// classification, orientation unknown); conjoined when equal as given (used
// once both tiles have a fixed orientation).
package tile
