package mosaic

import "errors"

var (
	// ErrNilInput indicates a nil arrangement, image or pattern.
	ErrNilInput = errors.New("mosaic: nil input")
	// ErrNoInterior indicates tiles too small to leave content after the ring is dropped.
	ErrNoInterior = errors.New("mosaic: tiles have no interior")
	// ErrEmptyPattern indicates a pattern with no must-be-filled cells.
	ErrEmptyPattern = errors.New("mosaic: pattern has no filled cells")
	// ErrBlockSize indicates an image that does not divide into square blocks of the given size.
	ErrBlockSize = errors.New("mosaic: image does not divide into blocks")
)
