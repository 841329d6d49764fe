// Package shapes generates the paths that text is laid out along.
//
// Every generator is a small value type implementing [Shape]. The set is
// closed: callers switch on [Kind] and the compiler-visible list of types
// below, never on type names.
//
//	p, err := shapes.Circle{Center: textpath.Pt(200, 200), Radius: 150, Start: -math.Pi / 2}.Path()
//
// Closed shapes start at a well-defined point and run clockwise on screen,
// so text reads left to right along their top edge.
package shapes
