package editor

import (
	"github.com/gogpu/textpath"
)

// transform maps every original point through m.
func (e *Editor) transform(m textpath.Matrix) {
	for i, p := range e.points {
		e.points[i] = m.TransformPoint(p)
	}
	e.invalidate()
	e.notify(ChangeViewport)
}

// FitCanvas scales and moves the shape so that it fills the viewport less
// the margin, keeping its aspect ratio. A shape with no extent is only
// centered.
func (e *Editor) FitCanvas() {
	if len(e.points) == 0 {
		return
	}
	bounds := textpath.BoundingRect(e.points)
	target := e.viewport.Inset(e.cfg.Margin)
	s := bounds.FitScale(target)
	if s == 0 {
		s = 1
	}
	c, tc := bounds.Center(), target.Center()
	e.transform(textpath.Translate(-c.X, -c.Y).
		Then(textpath.Scale(s, s)).
		Then(textpath.Translate(tc.X, tc.Y)))
}

// CenterShape moves the shape so that its bounding box is centered in the
// viewport.
func (e *Editor) CenterShape() {
	if len(e.points) == 0 {
		return
	}
	d := e.viewport.Center().Sub(textpath.BoundingRect(e.points).Center())
	e.transform(textpath.Translate(d.X, d.Y))
}

// SetViewport changes the viewport and maps the points from the old
// viewport into the new one with a uniform scale, centered.
func (e *Editor) SetViewport(r textpath.Rect) {
	if r.IsEmpty() {
		return
	}
	old := e.viewport
	e.viewport = r
	s := old.FitScale(r)
	if s == 0 {
		s = 1
	}
	oc, nc := old.Center(), r.Center()
	e.transform(textpath.Translate(-oc.X, -oc.Y).
		Then(textpath.Scale(s, s)).
		Then(textpath.Translate(nc.X, nc.Y)))
}

// ScaleBy scales the shape by f about the viewport center. Non-positive
// factors are ignored.
func (e *Editor) ScaleBy(f float64) {
	if f <= 0 || len(e.points) == 0 {
		return
	}
	c := e.viewport.Center()
	e.transform(textpath.Translate(-c.X, -c.Y).
		Then(textpath.Scale(f, f)).
		Then(textpath.Translate(c.X, c.Y)))
}

// SortNearestNeighbor reorders the points into a greedy chain: starting
// from the first point, each next point is the closest one not yet used.
// Ties go to the lower original index.
func (e *Editor) SortNearestNeighbor() {
	n := len(e.points)
	if n < 3 {
		return
	}
	used := make([]bool, n)
	order := make([]textpath.Point, 0, n)
	cur := 0
	used[0] = true
	order = append(order, e.points[0])
	for len(order) < n {
		best, bestD := -1, 0.0
		for i, p := range e.points {
			if used[i] {
				continue
			}
			if d := p.DistanceSquared(e.points[cur]); best < 0 || d < bestD {
				best, bestD = i, d
			}
		}
		used[best] = true
		order = append(order, e.points[best])
		cur = best
	}
	e.points = order
	e.moving = -1
	e.pointsChanged()
}
