package shapefile

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/textpath"
)

// Version is the current file format version.
const Version = 1

var (
	// ErrUnknownFormat is returned for a file extension with no codec.
	ErrUnknownFormat = errors.New("shapefile: unknown format")

	// ErrUnsupportedVersion is returned for files written by a newer
	// format version.
	ErrUnsupportedVersion = errors.New("shapefile: unsupported version")

	// ErrInvalidPoint is returned for NaN or infinite coordinates.
	ErrInvalidPoint = errors.New("shapefile: invalid point")
)

// Shape is a named, ordered point set.
type Shape struct {
	Name   string
	Closed bool
	Points []textpath.Point
}

// Path returns the shape as a polyline path.
func (s Shape) Path() *textpath.Path {
	return textpath.Polyline(s.Points, s.Closed)
}

// Validate reports the first non-finite coordinate.
func (s Shape) Validate() error {
	for i, p := range s.Points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: point %d is (%v, %v)", ErrInvalidPoint, i, p.X, p.Y)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// record is the on-disk layout shared by both codecs.
type record struct {
	Version int          `toml:"version" cbor:"version"`
	Name    string       `toml:"name" cbor:"name"`
	Closed  bool         `toml:"closed" cbor:"closed"`
	Points  [][2]float64 `toml:"points" cbor:"points"`
}

func toRecord(s Shape) (record, error) {
	if err := s.Validate(); err != nil {
		return record{}, err
	}
	r := record{
		Version: Version,
		Name:    s.Name,
		Closed:  s.Closed,
		Points:  make([][2]float64, len(s.Points)),
	}
	for i, p := range s.Points {
		r.Points[i] = [2]float64{p.X, p.Y}
	}
	return r, nil
}

func fromRecord(r record) (Shape, error) {
	if r.Version > Version || r.Version < 1 {
		return Shape{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	s := Shape{
		Name:   r.Name,
		Closed: r.Closed,
		Points: make([]textpath.Point, len(r.Points)),
	}
	for i, p := range r.Points {
		s.Points[i] = textpath.Pt(p[0], p[1])
	}
	return s, s.Validate()
}
