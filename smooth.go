package textpath

// DefaultChaikinIterations is the number of corner-cutting passes used by
// the editor's smoothing preview.
const DefaultChaikinIterations = 5

// Chaikin smooths a polyline by corner cutting.
//
// Each pass replaces every edge P0->P1 with the points at 25% and 75% along
// it. Open polylines keep their first and last points, so a pass turns n
// points into 2(n-1)+2. Closed polylines also cut the wrap-around edge and
// turn n points into 2n. Repeated passes converge towards a quadratic
// B-spline.
//
// Inputs with two or fewer points, or a non-positive iteration count, are
// returned as an unchanged copy.
func Chaikin(points []Point, iterations int, closed bool) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if len(points) <= 2 {
		return out
	}
	for i := 0; i < iterations; i++ {
		out = chaikinPass(out, closed)
	}
	return out
}

func chaikinPass(pts []Point, closed bool) []Point {
	n := len(pts)
	if closed {
		next := make([]Point, 0, 2*n)
		for i := 0; i < n; i++ {
			p0, p1 := pts[i], pts[(i+1)%n]
			next = append(next, p0.Lerp(p1, 0.25), p0.Lerp(p1, 0.75))
		}
		return next
	}

	next := make([]Point, 0, 2*(n-1)+2)
	next = append(next, pts[0])
	for i := 0; i < n-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		next = append(next, p0.Lerp(p1, 0.25), p0.Lerp(p1, 0.75))
	}
	return append(next, pts[n-1])
}
