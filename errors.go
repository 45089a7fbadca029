package jigsaw

import (
	"errors"
	"fmt"
)

// Sentinel errors for Reconstruct.
var (
	// ErrNoTiles is returned for an empty tile map.
	ErrNoTiles = errors.New("jigsaw: no tiles")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("jigsaw: invalid option supplied")
)

// Stage names the step of the pipeline at which reconstruction stopped.
type Stage string

const (
	StageClassify Stage = "classify"
	StageBorder   Stage = "border"
	StageInterior Stage = "interior"
	StageStitch   Stage = "stitch"
	StageScan     Stage = "scan"
)

// Error reports that the tiles could not be assembled. It unwraps to the
// underlying cause.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("jigsaw: could not assemble (%s): %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(stage Stage, err error) *Error {
	return &Error{Stage: stage, Err: err}
}
