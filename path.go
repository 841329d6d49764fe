package textpath

// contiguityEpsilon is the largest gap tolerated between consecutive segments.
const contiguityEpsilon = 1e-9

// Path is an ordered, contiguous sequence of segments. A Path is immutable
// once built: operations that change geometry return a new Path.
type Path struct {
	segments []Segment
}

// NewPath creates a path from segments. It returns a *ContiguityError when
// the end of one segment is not the start of the next.
// An empty segment list yields an empty path.
func NewPath(segs ...Segment) (*Path, error) {
	for i := 1; i < len(segs); i++ {
		end, start := segs[i-1].End(), segs[i].Start()
		if !end.ApproxEqual(start, contiguityEpsilon) {
			return nil, &ContiguityError{Index: i, End: end, Start: start}
		}
	}
	p := &Path{segments: make([]Segment, len(segs))}
	copy(p.segments, segs)
	return p, nil
}

// Polyline creates a path of straight lines through points. When closed is
// set and the last point differs from the first, a closing line is added.
// Fewer than two points yield an empty path.
func Polyline(points []Point, closed bool) *Path {
	p := &Path{}
	if len(points) < 2 {
		return p
	}
	p.segments = make([]Segment, 0, len(points))
	for i := 1; i < len(points); i++ {
		p.segments = append(p.segments, Line{P0: points[i-1], P1: points[i]})
	}
	first, last := points[0], points[len(points)-1]
	if closed && first != last {
		p.segments = append(p.segments, Line{P0: last, P1: first})
	}
	return p
}

// Segments returns a copy of the path's segments.
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.segments) == 0
}

// Start returns the start of the first segment, or the zero Point.
func (p *Path) Start() Point {
	if p.IsEmpty() {
		return Point{}
	}
	return p.segments[0].Start()
}

// End returns the end of the last segment, or the zero Point.
func (p *Path) End() Point {
	if p.IsEmpty() {
		return Point{}
	}
	return p.segments[len(p.segments)-1].End()
}

// Closed reports whether the path ends where it starts.
func (p *Path) Closed() bool {
	return !p.IsEmpty() && p.Start().ApproxEqual(p.End(), contiguityEpsilon)
}

// Bounds returns the bounding box of all segments.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := p.segments[0].BoundingBox()
	for _, s := range p.segments[1:] {
		r = r.Union(s.BoundingBox())
	}
	return r
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{segments: make([]Segment, len(p.segments))}
	for i, s := range p.segments {
		result.segments[i] = s.Transform(m)
	}
	return result
}

// Reversed returns the path traversed from its end to its start.
// Text laid on a reversed closed shape reads along the inside.
func (p *Path) Reversed() *Path {
	n := len(p.segments)
	result := &Path{segments: make([]Segment, n)}
	for i, s := range p.segments {
		result.segments[n-1-i] = s.Reversed()
	}
	return result
}

// Points returns the segment endpoints in order: the start of the path
// followed by the end of every segment. Control points are omitted.
func (p *Path) Points() []Point {
	if p.IsEmpty() {
		return nil
	}
	pts := make([]Point, 0, len(p.segments)+1)
	pts = append(pts, p.Start())
	for _, s := range p.segments {
		pts = append(pts, s.End())
	}
	return pts
}
