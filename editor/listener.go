package editor

// ChangeKind says which part of the editor state changed.
type ChangeKind int

const (
	ChangePoints ChangeKind = iota
	ChangeSmoothing
	ChangeClosed
	ChangeGrid
	ChangeViewport
	ChangeMode
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePoints:
		return "points"
	case ChangeSmoothing:
		return "smoothing"
	case ChangeClosed:
		return "closed"
	case ChangeGrid:
		return "grid"
	case ChangeViewport:
		return "viewport"
	case ChangeMode:
		return "mode"
	default:
		return "unknown"
	}
}

// Change describes one mutation.
type Change struct {
	Kind ChangeKind

	// Points is the number of original points after the change.
	Points int
}

// Listener is called synchronously after every mutation.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it.
func (e *Editor) Subscribe(l Listener) (cancel func()) {
	e.nextSub++
	id := e.nextSub
	e.subs = append(e.subs, subscription{id: id, fn: l})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *Editor) notify(kind ChangeKind) {
	c := Change{Kind: kind, Points: len(e.points)}
	for _, s := range e.subs {
		s.fn(c)
	}
}
