package textpath

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textpath package.
var (
	// ErrOutOfRange is returned when an arc-length offset lies outside
	// [0, Length()].
	ErrOutOfRange = errors.New("textpath: offset out of range")

	// ErrDegeneratePath is returned when a path has no measurable length.
	ErrDegeneratePath = errors.New("textpath: degenerate path")

	// ErrNonContiguous is returned when consecutive segments do not meet.
	ErrNonContiguous = errors.New("textpath: segments are not contiguous")

	// ErrDisjointSubpath is returned when a builder is asked to start a
	// second subpath.
	ErrDisjointSubpath = errors.New("textpath: path must be a single subpath")

	// ErrNoCurrentPoint is returned when a drawing command is issued before
	// the builder has a current point.
	ErrNoCurrentPoint = errors.New("textpath: no current point")
)

// ContiguityError reports the first pair of segments that do not meet.
type ContiguityError struct {
	Index int   // index of the segment whose start does not match
	End   Point // end of segment Index-1
	Start Point // start of segment Index
}

func (e *ContiguityError) Error() string {
	return fmt.Sprintf("textpath: segment %d starts at %v, previous ends at %v", e.Index, e.Start, e.End)
}

// Unwrap returns ErrNonContiguous.
func (e *ContiguityError) Unwrap() error {
	return ErrNonContiguous
}
