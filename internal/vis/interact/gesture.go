package interact

import "math"

// Wheel zoom factors per scroll tick.
const (
	DefaultWheelZoomIn  = 1.1
	DefaultWheelZoomOut = 0.9
)

// GestureState is the interpreter's session state.
type GestureState int

const (
	Idle GestureState = iota
	Dragging
	Pinching
)

func (s GestureState) String() string {
	return [...]string{"Idle", "Dragging", "Pinching"}[s]
}

// Source identifies the input device of an event.
type Source int

const (
	Mouse Source = iota
	Touch
)

// EventKind classifies raw input events.
type EventKind int

const (
	Press EventKind = iota
	Move
	Release
	Leave
	Cancel
	Scroll
)

// Event is a raw pointer, touch or wheel event in viewport coordinates.
type Event struct {
	Kind    EventKind
	Source  Source
	ID      int // Pointer or touch identifier
	X, Y    float64
	ScrollY float64 // Positive scrolls down (zoom out)

	// OnMarker is set when the press landed on a hotspot marker. Those
	// presses belong to the marker and never start a pan.
	OnMarker bool
}

// OpKind classifies engine operations emitted by the interpreter.
type OpKind int

const (
	OpInterrupt OpKind = iota // A gesture began; stop any animation
	OpPan                     // PanTo(X, Y, Origin)
	OpZoom                    // DiscreteZoom(Factor)
	OpZoomAt                  // ZoomAtPoint(Factor, X, Y)
)

// Op is one engine operation.
type Op struct {
	Kind   OpKind
	Factor float64
	X, Y   float64
	Origin DragOrigin
}

type point struct{ x, y float64 }

// dragSession lives from drag start to drag end.
type dragSession struct {
	pointer int
	origin  DragOrigin
}

// pinchSession lives while two touch points are down.
type pinchSession struct {
	a, b     int
	lastDist float64
}

// Interpreter turns raw input into engine operations. It tracks drag and
// pinch sessions across events; wheel events are stateless.
type Interpreter struct {
	WheelZoomIn  float64
	WheelZoomOut float64

	state   GestureState
	drag    *dragSession
	pinch   *pinchSession
	touches map[int]point
}

// NewInterpreter creates an idle interpreter with the default wheel factors.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		WheelZoomIn:  DefaultWheelZoomIn,
		WheelZoomOut: DefaultWheelZoomOut,
		touches:      make(map[int]point),
	}
}

// State returns the current session state.
func (in *Interpreter) State() GestureState {
	return in.state
}

// Handle consumes one event. current is the transform at the time of the
// event; drags capture their origin from it.
func (in *Interpreter) Handle(ev Event, current Transform) []Op {
	if ev.Kind == Scroll {
		return in.wheel(ev)
	}
	if ev.Source == Touch {
		return in.touch(ev, current)
	}
	return in.mouse(ev, current)
}

// Reset drops any session, e.g. when the artwork changes mid-gesture.
func (in *Interpreter) Reset() {
	in.state = Idle
	in.drag = nil
	in.pinch = nil
	clear(in.touches)
}

func (in *Interpreter) wheel(ev Event) []Op {
	if ev.ScrollY == 0 {
		return nil
	}
	factor := in.WheelZoomIn
	if ev.ScrollY > 0 {
		factor = in.WheelZoomOut
	}
	return []Op{
		{Kind: OpInterrupt},
		{Kind: OpZoomAt, Factor: factor, X: ev.X, Y: ev.Y},
	}
}

func (in *Interpreter) mouse(ev Event, current Transform) []Op {
	switch ev.Kind {
	case Press:
		if ev.OnMarker || in.state != Idle {
			return nil
		}
		return in.startDrag(ev, current)

	case Move:
		return in.dragMove(ev)

	case Release, Leave, Cancel:
		if in.state == Dragging && in.drag.pointer == ev.ID {
			in.endSession()
		}
	}
	return nil
}

func (in *Interpreter) touch(ev Event, current Transform) []Op {
	switch ev.Kind {
	case Press:
		if len(in.touches) == 0 && ev.OnMarker {
			return nil
		}
		in.touches[ev.ID] = point{ev.X, ev.Y}

		switch len(in.touches) {
		case 1:
			return in.startDrag(ev, current)
		case 2:
			return in.startPinch()
		}

	case Move:
		if _, ok := in.touches[ev.ID]; !ok {
			return nil
		}
		in.touches[ev.ID] = point{ev.X, ev.Y}

		if in.state == Pinching {
			return in.pinchMove(ev.ID)
		}
		return in.dragMove(ev)

	case Release, Cancel:
		if _, ok := in.touches[ev.ID]; !ok {
			return nil
		}
		delete(in.touches, ev.ID)

		switch {
		case len(in.touches) == 0:
			in.endSession()
		case in.state == Pinching && (ev.ID == in.pinch.a || ev.ID == in.pinch.b):
			// Lifting one pinch finger ends the pinch; the remaining
			// finger does nothing until lifted.
			in.endSession()
		case in.state == Dragging && in.drag.pointer == ev.ID:
			in.endSession()
		}
	}
	return nil
}

func (in *Interpreter) startDrag(ev Event, current Transform) []Op {
	in.state = Dragging
	in.pinch = nil
	in.drag = &dragSession{
		pointer: ev.ID,
		origin:  NewDragOrigin(ev.X, ev.Y, current),
	}
	return []Op{{Kind: OpInterrupt}}
}

func (in *Interpreter) dragMove(ev Event) []Op {
	if in.state != Dragging || in.drag.pointer != ev.ID {
		return nil
	}
	return []Op{{Kind: OpPan, X: ev.X, Y: ev.Y, Origin: in.drag.origin}}
}

func (in *Interpreter) startPinch() []Op {
	ids := make([]int, 0, 2)
	for id := range in.touches {
		ids = append(ids, id)
	}

	in.state = Pinching
	in.drag = nil
	in.pinch = &pinchSession{a: ids[0], b: ids[1]}
	in.pinch.lastDist = in.pinchDistance()
	return []Op{{Kind: OpInterrupt}}
}

func (in *Interpreter) pinchMove(id int) []Op {
	if id != in.pinch.a && id != in.pinch.b {
		return nil
	}

	dist := in.pinchDistance()
	last := in.pinch.lastDist
	in.pinch.lastDist = dist
	if last <= 0 || dist <= 0 {
		return nil
	}
	// Ratio to the previous distance, not the session start
	return []Op{{Kind: OpZoom, Factor: dist / last}}
}

func (in *Interpreter) pinchDistance() float64 {
	a := in.touches[in.pinch.a]
	b := in.touches[in.pinch.b]
	return math.Hypot(b.x-a.x, b.y-a.y)
}

func (in *Interpreter) endSession() {
	in.state = Idle
	in.drag = nil
	in.pinch = nil
}
