package editor

import (
	"log/slog"
	"math"
	"slices"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/shapefile"
)

// Editor holds an editable point set.
type Editor struct {
	cfg      Config
	mode     Mode
	viewport textpath.Rect

	points []textpath.Point

	// smoothed caches Chaikin(points). It is nil when stale.
	smoothed []textpath.Point

	// moving is the index of the point being dragged, or -1.
	moving int

	subs    []subscription
	nextSub int
}

// New creates an empty editor.
func New(cfg Config) *Editor {
	cfg = cfg.normalize()
	return &Editor{
		cfg:      cfg,
		viewport: cfg.Canvas,
		moving:   -1,
	}
}

// Mode returns the current tap mode.
func (e *Editor) Mode() Mode { return e.mode }

// Closed reports whether the shape wraps around.
func (e *Editor) Closed() bool { return e.cfg.Closed }

// Smoothing reports whether the smoothing preview is on.
func (e *Editor) Smoothing() bool { return e.cfg.Smoothing }

// GridGap returns the snapping grid spacing, 0 when disabled.
func (e *Editor) GridGap() float64 { return e.cfg.GridGap }

// Canvas returns the drawing area.
func (e *Editor) Canvas() textpath.Rect { return e.cfg.Canvas }

// Viewport returns the area that FitCanvas and CenterShape target.
func (e *Editor) Viewport() textpath.Rect { return e.viewport }

// Len returns the number of original points.
func (e *Editor) Len() int { return len(e.points) }

// SetMode changes what Tap does.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	e.mode = m
	e.notify(ChangeMode)
}

// Tap applies the current mode at loc.
func (e *Editor) Tap(loc textpath.Point) {
	switch e.mode {
	case ModeAdd:
		e.AddPoint(loc)
	case ModeInsert:
		e.InsertPoint(loc)
	case ModeDelete:
		e.DeletePoint(loc)
	}
}

// snap moves loc to the nearest grid intersection when the grid is on.
func (e *Editor) snap(loc textpath.Point) textpath.Point {
	g := e.cfg.GridGap
	if g <= 0 {
		return loc
	}
	o := e.cfg.Canvas.Min
	return textpath.Pt(
		o.X+math.Round((loc.X-o.X)/g)*g,
		o.Y+math.Round((loc.Y-o.Y)/g)*g,
	)
}

// AddPoint appends loc, snapped to the grid.
func (e *Editor) AddPoint(loc textpath.Point) {
	e.points = append(e.points, e.snap(loc))
	e.pointsChanged()
}

// InsertPoint adds loc next to the closest existing point, on the side it
// lies on.
//
// When the two nearest points are neighbours along the shape the point goes
// between them. Otherwise the neighbourhood of the closest point is rotated
// so that its outward normal lies on the x axis, and the sign of the
// rotated y of loc decides whether it goes before or after that point. An
// index past the end appends. With fewer than two points InsertPoint
// behaves like AddPoint.
func (e *Editor) InsertPoint(loc textpath.Point) {
	loc = e.snap(loc)
	n := len(e.points)
	if n < 2 {
		e.AddPoint(loc)
		return
	}

	idx := e.insertIndex(loc)
	if idx >= n {
		e.points = append(e.points, loc)
	} else {
		e.points = slices.Insert(e.points, idx, loc)
		if e.moving >= idx {
			e.moving++
		}
	}
	e.pointsChanged()
}

func (e *Editor) insertIndex(loc textpath.Point) int {
	n := len(e.points)
	i, j := e.ClosestTwo(loc)
	switch {
	case j == i+1:
		return j
	case e.cfg.Closed && i == 0 && j == n-1:
		// Between the last and the first point.
		return n
	}

	c, _ := e.Closest(loc)
	prev, next := c-1, c+1
	if e.cfg.Closed {
		prev, next = (c+n-1)%n, (c+1)%n
	}
	from, to := e.points[c], e.points[c]
	if prev >= 0 {
		from = e.points[prev]
	}
	if next < n {
		to = e.points[next]
	}
	tangent := to.Sub(from)
	if tangent.LengthSquared() == 0 {
		return c + 1
	}

	// Outward normal onto +X puts the tangent on +Y.
	normal := textpath.Pt(tangent.Y, -tangent.X)
	rotated := loc.RotateAround(e.points[c], -normal.Angle())
	if rotated.Y < e.points[c].Y {
		if c == 0 && e.cfg.Closed {
			return n
		}
		return c
	}
	return c + 1
}

// DeletePoint removes the point closest to loc if it lies within the
// delete tolerance.
func (e *Editor) DeletePoint(loc textpath.Point) {
	i, d := e.Closest(loc)
	if i < 0 || d > e.cfg.DeleteTolerance {
		textpath.Logger().Debug("editor: no point to delete",
			slog.Float64("x", loc.X), slog.Float64("y", loc.Y))
		return
	}
	e.points = slices.Delete(e.points, i, i+1)
	switch {
	case e.moving == i:
		e.moving = -1
	case e.moving > i:
		e.moving--
	}
	e.pointsChanged()
}

// BeginMove starts dragging the point closest to loc. It reports false,
// cancelling any drag, when no point is within the move tolerance.
func (e *Editor) BeginMove(loc textpath.Point) bool {
	i, d := e.Closest(loc)
	if i < 0 || d > e.cfg.MoveTolerance {
		e.moving = -1
		return false
	}
	e.moving = i
	return true
}

// Moving reports the index of the dragged point.
func (e *Editor) Moving() (int, bool) {
	return e.moving, e.moving >= 0
}

// MoveTo places the dragged point at loc.
func (e *Editor) MoveTo(loc textpath.Point) {
	if e.moving < 0 {
		return
	}
	e.points[e.moving] = loc
	e.pointsChanged()
}

// EndMove places the dragged point at loc and ends the drag.
func (e *Editor) EndMove(loc textpath.Point) {
	e.MoveTo(loc)
	e.moving = -1
}

// CancelMove ends the drag, leaving the point where it is.
func (e *Editor) CancelMove() {
	e.moving = -1
}

// SetSmoothing turns the smoothing preview on or off. Turning it on
// recomputes from the original points, so repeating it changes nothing.
func (e *Editor) SetSmoothing(on bool) {
	e.cfg.Smoothing = on
	e.smoothed = nil
	if on {
		e.smoothed = textpath.Chaikin(e.points, e.cfg.SmoothIterations, e.cfg.Closed)
	}
	e.notify(ChangeSmoothing)
}

// SetSmoothIterations sets the number of Chaikin passes.
func (e *Editor) SetSmoothIterations(n int) {
	e.cfg.SmoothIterations = max(n, 0)
	e.invalidate()
	e.notify(ChangeSmoothing)
}

// SetClosed sets whether the shape wraps around.
func (e *Editor) SetClosed(closed bool) {
	if closed == e.cfg.Closed {
		return
	}
	e.cfg.Closed = closed
	e.invalidate()
	e.notify(ChangeClosed)
}

// SetGridGap sets the snapping grid spacing. Zero disables the grid.
// Existing points are not moved.
func (e *Editor) SetGridGap(gap float64) {
	e.cfg.GridGap = max(gap, 0)
	e.notify(ChangeGrid)
}

// Clear removes every point.
func (e *Editor) Clear() {
	e.points = nil
	e.moving = -1
	e.pointsChanged()
}

// SetPoints replaces the point set.
func (e *Editor) SetPoints(points []textpath.Point) {
	e.points = slices.Clone(points)
	e.moving = -1
	e.pointsChanged()
}

// OriginalPoints returns a copy of the edited points.
func (e *Editor) OriginalPoints() []textpath.Point {
	return slices.Clone(e.points)
}

// SmoothedPoints returns the smoothed points, or nil when smoothing is off
// or there are no points.
func (e *Editor) SmoothedPoints() []textpath.Point {
	if !e.cfg.Smoothing || len(e.points) == 0 {
		return nil
	}
	if e.smoothed == nil {
		e.smoothed = textpath.Chaikin(e.points, e.cfg.SmoothIterations, e.cfg.Closed)
	}
	return slices.Clone(e.smoothed)
}

// ActivePoints returns the points that are drawn and laid out: the
// smoothed points when smoothing is on, the original points otherwise.
func (e *Editor) ActivePoints() []textpath.Point {
	if s := e.SmoothedPoints(); s != nil {
		return s
	}
	return e.OriginalPoints()
}

// Path returns the active points as a polyline path.
func (e *Editor) Path() *textpath.Path {
	return textpath.Polyline(e.ActivePoints(), e.cfg.Closed)
}

// Closest returns the index of and distance to the point nearest loc, or
// (-1, +Inf) when there are no points.
func (e *Editor) Closest(loc textpath.Point) (int, float64) {
	best, bestD := -1, math.Inf(1)
	for i, p := range e.points {
		if d := p.DistanceSquared(loc); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return -1, bestD
	}
	return best, math.Sqrt(bestD)
}

// ClosestTwo returns the indices of the two points nearest loc in
// ascending index order, or (-1, -1) with fewer than two points.
func (e *Editor) ClosestTwo(loc textpath.Point) (i, j int) {
	if len(e.points) < 2 {
		return -1, -1
	}
	a, b := -1, -1
	da, db := math.Inf(1), math.Inf(1)
	for k, p := range e.points {
		d := p.DistanceSquared(loc)
		switch {
		case d < da:
			b, db = a, da
			a, da = k, d
		case d < db:
			b, db = k, d
		}
	}
	return min(a, b), max(a, b)
}

// Snapshot returns the original points as a persistable shape.
func (e *Editor) Snapshot(name string) shapefile.Shape {
	return shapefile.Shape{
		Name:   name,
		Closed: e.cfg.Closed,
		Points: e.OriginalPoints(),
	}
}

// Load replaces the points and the closed flag with those of s.
func (e *Editor) Load(s shapefile.Shape) {
	if s.Closed != e.cfg.Closed {
		e.cfg.Closed = s.Closed
		e.notify(ChangeClosed)
	}
	e.SetPoints(s.Points)
}

func (e *Editor) invalidate() {
	e.smoothed = nil
}

func (e *Editor) pointsChanged() {
	e.invalidate()
	e.notify(ChangePoints)
}
