package shapes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/textpath"
)

// ErrInvalidShape is returned by Path for parameters that describe no
// usable curve.
var ErrInvalidShape = errors.New("shapes: invalid shape")

// Kind identifies a shape generator.
type Kind int

const (
	KindCircle Kind = iota
	KindEllipse
	KindRectangle
	KindTriangle
	KindPolygon
	KindStar
	KindSpiral
	KindFreeform
)

var kindNames = [...]string{
	KindCircle:    "circle",
	KindEllipse:   "ellipse",
	KindRectangle: "rectangle",
	KindTriangle:  "triangle",
	KindPolygon:   "polygon",
	KindStar:      "star",
	KindSpiral:    "spiral",
	KindFreeform:  "freeform",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("shapes: unknown kind %q", s)
}

// Shape produces a path. Implementations are the types in this package.
type Shape interface {
	Kind() Kind
	Path() (*textpath.Path, error)

	sealed()
}

func invalid(k Kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidShape, k, fmt.Sprintf(format, args...))
}
