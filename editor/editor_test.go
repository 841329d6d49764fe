package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/shapefile"
)

func pt(x, y float64) textpath.Point { return textpath.Pt(x, y) }

func square(closed bool) *Editor {
	cfg := DefaultConfig()
	cfg.Closed = closed
	e := New(cfg)
	e.SetPoints([]textpath.Point{pt(0, 0), pt(100, 0), pt(100, 100), pt(0, 100)})
	return e
}

func assertPoints(t *testing.T, want, got []textpath.Point) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9, "point %d x", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-9, "point %d y", i)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeAdd, ModeInsert, ModeDelete} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("drag")
	assert.Error(t, err)
}

func TestAddPoint_Snaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridGap = 20
	e := New(cfg)

	e.AddPoint(pt(31, 49))
	e.AddPoint(pt(9.9, 10.1))
	assertPoints(t, []textpath.Point{pt(40, 40), pt(0, 20)}, e.OriginalPoints())

	e.SetGridGap(0)
	e.AddPoint(pt(31, 49))
	assert.Equal(t, pt(31, 49), e.OriginalPoints()[2])
}

func TestTap_FollowsMode(t *testing.T) {
	e := square(true)
	e.SetMode(ModeDelete)
	e.Tap(pt(98, 3))
	assert.Equal(t, 3, e.Len())

	e.SetMode(ModeAdd)
	e.Tap(pt(50, 50))
	assert.Equal(t, pt(50, 50), e.OriginalPoints()[3])
}

func TestInsertPoint_SquareEdge(t *testing.T) {
	e := square(true)
	e.InsertPoint(pt(102, 45))

	got := e.OriginalPoints()
	require.Len(t, got, 5)
	assertPoints(t, []textpath.Point{
		pt(0, 0), pt(100, 0), pt(102, 45), pt(100, 100), pt(0, 100),
	}, got)
}

func TestInsertPoint_ClosingEdge(t *testing.T) {
	e := square(true)
	e.InsertPoint(pt(-3, 50))
	got := e.OriginalPoints()
	require.Len(t, got, 5)
	assert.Equal(t, pt(-3, 50), got[4])
}

func TestInsertPoint_SideOfClosest(t *testing.T) {
	// Open U shape: the two nearest points to the start are not
	// neighbours, so the side of the start point decides.
	newU := func() *Editor {
		e := New(DefaultConfig())
		e.SetPoints([]textpath.Point{pt(0, 0), pt(100, 0), pt(100, 100), pt(10, 100)})
		return e
	}

	behind := newU()
	behind.InsertPoint(pt(-5, 30))
	assert.Equal(t, pt(-5, 30), behind.OriginalPoints()[0])

	ahead := newU()
	ahead.InsertPoint(pt(5, 30))
	assert.Equal(t, pt(5, 30), ahead.OriginalPoints()[1])
}

func TestInsertPoint_FewPoints(t *testing.T) {
	e := New(DefaultConfig())
	e.InsertPoint(pt(1, 2))
	e.InsertPoint(pt(3, 4))
	assertPoints(t, []textpath.Point{pt(1, 2), pt(3, 4)}, e.OriginalPoints())
}

func TestDeletePoint(t *testing.T) {
	e := square(false)

	e.DeletePoint(pt(100, 15))
	assert.Equal(t, 4, e.Len(), "outside tolerance is a no-op")

	e.DeletePoint(pt(100, 8))
	assertPoints(t, []textpath.Point{pt(0, 0), pt(100, 100), pt(0, 100)}, e.OriginalPoints())

	empty := New(DefaultConfig())
	empty.DeletePoint(pt(0, 0))
	assert.Equal(t, 0, empty.Len())
}

func TestMovePoint(t *testing.T) {
	e := square(false)

	assert.False(t, e.BeginMove(pt(50, 50)))
	_, moving := e.Moving()
	assert.False(t, moving)
	e.MoveTo(pt(1, 1))
	assert.Equal(t, pt(0, 0), e.OriginalPoints()[0], "MoveTo without a drag")

	require.True(t, e.BeginMove(pt(115, 110)))
	i, moving := e.Moving()
	assert.True(t, moving)
	assert.Equal(t, 2, i)

	e.MoveTo(pt(120, 130))
	assert.Equal(t, pt(120, 130), e.OriginalPoints()[2])
	e.EndMove(pt(125, 135))
	assert.Equal(t, pt(125, 135), e.OriginalPoints()[2])
	_, moving = e.Moving()
	assert.False(t, moving)
}

func TestMovePoint_TracksEdits(t *testing.T) {
	e := square(false)
	require.True(t, e.BeginMove(pt(0, 100)))

	e.DeletePoint(pt(0, 0))
	e.MoveTo(pt(5, 95))
	assert.Equal(t, pt(5, 95), e.OriginalPoints()[2])

	e.DeletePoint(pt(5, 95))
	_, moving := e.Moving()
	assert.False(t, moving)

	e.CancelMove()
	assert.Equal(t, 2, e.Len())
}

func TestSmoothing(t *testing.T) {
	e := square(true)
	assert.Nil(t, e.SmoothedPoints())
	assert.Equal(t, e.OriginalPoints(), e.ActivePoints())

	e.SetSmoothing(true)
	first := e.SmoothedPoints()
	require.Len(t, first, 4*32)

	e.SetSmoothing(true)
	assert.Equal(t, first, e.SmoothedPoints(), "turning smoothing on twice is not cumulative")
	assert.Equal(t, first, e.ActivePoints())
	assert.Len(t, e.OriginalPoints(), 4)

	e.SetSmoothIterations(1)
	assert.Len(t, e.SmoothedPoints(), 8)

	e.AddPoint(pt(50, 150))
	assert.Len(t, e.SmoothedPoints(), 10)

	e.SetSmoothing(false)
	assert.Nil(t, e.SmoothedPoints())
	assert.Len(t, e.ActivePoints(), 5)
}

func TestSetClosed(t *testing.T) {
	e := square(false)
	e.SetSmoothing(true)
	e.SetSmoothIterations(1)
	assert.Len(t, e.SmoothedPoints(), 8)
	assert.False(t, e.Path().Closed())

	e.SetClosed(true)
	assert.Len(t, e.SmoothedPoints(), 8)
	assert.True(t, e.Path().Closed())
}

func TestPath(t *testing.T) {
	e := square(true)
	p := e.Path()
	assert.Equal(t, 4, p.Len())
	assert.InDelta(t, 400, textpath.NewArcLengthPath(p).Length(), 1e-9)

	assert.True(t, New(DefaultConfig()).Path().IsEmpty())
}

func TestClosest(t *testing.T) {
	e := square(false)

	i, d := e.Closest(pt(97, 96))
	assert.Equal(t, 2, i)
	assert.InDelta(t, 5, d, 1e-9)

	a, b := e.ClosestTwo(pt(97, 96))
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	empty := New(DefaultConfig())
	i, _ = empty.Closest(pt(0, 0))
	assert.Equal(t, -1, i)
	a, b = empty.ClosestTwo(pt(0, 0))
	assert.Equal(t, -1, a)
	assert.Equal(t, -1, b)
}

func TestFitCanvas(t *testing.T) {
	e := New(DefaultConfig())
	e.SetPoints([]textpath.Point{pt(0, 0), pt(10, 0), pt(10, 20)})
	e.FitCanvas()
	assertPoints(t, []textpath.Point{pt(110, 20), pt(290, 20), pt(290, 380)}, e.OriginalPoints())

	single := New(DefaultConfig())
	single.SetPoints([]textpath.Point{pt(3, 4)})
	single.FitCanvas()
	assertPoints(t, []textpath.Point{pt(200, 200)}, single.OriginalPoints())
}

func TestCenterShape(t *testing.T) {
	e := New(DefaultConfig())
	e.SetPoints([]textpath.Point{pt(0, 0), pt(10, 20)})
	e.CenterShape()
	assertPoints(t, []textpath.Point{pt(195, 190), pt(205, 210)}, e.OriginalPoints())
}

func TestSetViewport(t *testing.T) {
	e := New(DefaultConfig())
	e.SetPoints([]textpath.Point{pt(200, 200), pt(400, 0)})

	e.SetViewport(textpath.Rect{})
	assert.Equal(t, DefaultConfig().Canvas, e.Viewport(), "empty viewport ignored")

	e.SetViewport(textpath.RectXYWH(0, 0, 200, 200))
	assertPoints(t, []textpath.Point{pt(100, 100), pt(200, 0)}, e.OriginalPoints())
}

func TestScaleBy(t *testing.T) {
	e := New(DefaultConfig())
	e.SetPoints([]textpath.Point{pt(100, 200), pt(300, 200)})
	e.ScaleBy(0.5)
	assertPoints(t, []textpath.Point{pt(150, 200), pt(250, 200)}, e.OriginalPoints())

	e.ScaleBy(0)
	e.ScaleBy(-1)
	assertPoints(t, []textpath.Point{pt(150, 200), pt(250, 200)}, e.OriginalPoints())
}

func TestTransformsInvalidateSmoothing(t *testing.T) {
	e := square(true)
	e.SetSmoothing(true)
	before := e.SmoothedPoints()

	e.ScaleBy(2)
	after := e.SmoothedPoints()
	require.Len(t, after, len(before))
	assert.NotEqual(t, before[0], after[0])
}

func TestSortNearestNeighbor(t *testing.T) {
	e := New(DefaultConfig())
	e.SetPoints([]textpath.Point{pt(0, 0), pt(30, 0), pt(10, 0), pt(20, 0), pt(5, 40)})
	e.SortNearestNeighbor()
	assertPoints(t, []textpath.Point{
		pt(0, 0), pt(10, 0), pt(20, 0), pt(30, 0), pt(5, 40),
	}, e.OriginalPoints())

	// Ties go to the lower index.
	tie := New(DefaultConfig())
	tie.SetPoints([]textpath.Point{pt(0, 0), pt(-1, 0), pt(1, 0)})
	tie.SortNearestNeighbor()
	assertPoints(t, []textpath.Point{pt(0, 0), pt(-1, 0), pt(1, 0)}, tie.OriginalPoints())
}

func TestSubscribe(t *testing.T) {
	e := square(false)
	var got []Change
	cancel := e.Subscribe(func(c Change) { got = append(got, c) })

	e.AddPoint(pt(1, 1))
	e.SetMode(ModeDelete)
	e.SetMode(ModeDelete)
	e.SetSmoothing(true)
	e.SetClosed(true)
	e.SetGridGap(10)
	e.ScaleBy(2)
	e.DeletePoint(pt(-500, -500))

	assert.Equal(t, []Change{
		{Kind: ChangePoints, Points: 5},
		{Kind: ChangeMode, Points: 5},
		{Kind: ChangeSmoothing, Points: 5},
		{Kind: ChangeClosed, Points: 5},
		{Kind: ChangeGrid, Points: 5},
		{Kind: ChangeViewport, Points: 5},
	}, got)

	cancel()
	cancel()
	e.Clear()
	assert.Len(t, got, 6)
}

func TestSubscribe_CancelOne(t *testing.T) {
	e := New(DefaultConfig())
	var a, b int
	cancelA := e.Subscribe(func(Change) { a++ })
	e.Subscribe(func(Change) { b++ })

	e.AddPoint(pt(0, 0))
	cancelA()
	e.AddPoint(pt(1, 1))
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "viewport", ChangeViewport.String())
	assert.Equal(t, "unknown", ChangeKind(99).String())
}

func TestSnapshotLoad(t *testing.T) {
	e := square(true)
	s := e.Snapshot("square")
	assert.Equal(t, "square", s.Name)
	assert.True(t, s.Closed)
	assert.Equal(t, e.OriginalPoints(), s.Points)

	other := New(DefaultConfig())
	other.Load(s)
	assert.True(t, other.Closed())
	assert.Equal(t, s.Points, other.OriginalPoints())

	s.Points[0] = pt(-1, -1)
	assert.Equal(t, pt(0, 0), other.OriginalPoints()[0], "Load copies")

	other.Load(shapefile.Shape{})
	assert.False(t, other.Closed())
	assert.Equal(t, 0, other.Len())
}

func TestNormalizeConfig(t *testing.T) {
	e := New(Config{GridGap: -1, SmoothIterations: -3})
	assert.Equal(t, 0.0, e.GridGap())
	assert.Equal(t, DefaultConfig().Canvas, e.Canvas())

	e.SetPoints([]textpath.Point{pt(0, 0)})
	e.DeletePoint(pt(9, 0))
	assert.Equal(t, 0, e.Len(), "default delete tolerance applies")
}
