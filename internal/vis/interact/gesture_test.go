package interact

import "testing"

func TestInterpreter_MouseDrag(t *testing.T) {
	in := NewInterpreter()
	cur := Identity()

	ops := in.Handle(Event{Kind: Press, Source: Mouse, X: 100, Y: 100}, cur)
	if in.State() != Dragging {
		t.Fatalf("State = %v, want Dragging", in.State())
	}
	if len(ops) != 1 || ops[0].Kind != OpInterrupt {
		t.Errorf("Drag start should interrupt animation, got %+v", ops)
	}

	ops = in.Handle(Event{Kind: Move, Source: Mouse, X: 130, Y: 110}, cur)
	if len(ops) != 1 || ops[0].Kind != OpPan {
		t.Fatalf("Expected one pan op, got %+v", ops)
	}

	got := DefaultEngine().PanTo(cur, ops[0].X, ops[0].Y, ops[0].Origin)
	if got.TranslateX != 30 || got.TranslateY != 10 {
		t.Errorf("Pan result = %+v, want translate (30,10)", got)
	}

	in.Handle(Event{Kind: Release, Source: Mouse, X: 130, Y: 110}, got)
	if in.State() != Idle {
		t.Errorf("State after release = %v, want Idle", in.State())
	}
	if ops := in.Handle(Event{Kind: Move, Source: Mouse, X: 200, Y: 200}, got); ops != nil {
		t.Errorf("Move while idle emitted %+v", ops)
	}
}

func TestInterpreter_DragOriginUsesCurrentTranslate(t *testing.T) {
	in := NewInterpreter()
	cur := Transform{Scale: 2, TranslateX: -40, TranslateY: 15}

	in.Handle(Event{Kind: Press, Source: Mouse, X: 10, Y: 20}, cur)
	ops := in.Handle(Event{Kind: Move, Source: Mouse, X: 10, Y: 20}, cur)
	got := DefaultEngine().PanTo(cur, ops[0].X, ops[0].Y, ops[0].Origin)
	if got != cur {
		t.Errorf("Zero-distance drag moved the view: %+v -> %+v", cur, got)
	}
}

func TestInterpreter_LeaveEndsDrag(t *testing.T) {
	in := NewInterpreter()
	in.Handle(Event{Kind: Press, Source: Mouse}, Identity())
	in.Handle(Event{Kind: Leave, Source: Mouse}, Identity())
	if in.State() != Idle {
		t.Errorf("State after leave = %v, want Idle", in.State())
	}
}

func TestInterpreter_PressOnMarkerDoesNotDrag(t *testing.T) {
	in := NewInterpreter()
	ops := in.Handle(Event{Kind: Press, Source: Mouse, X: 5, Y: 5, OnMarker: true}, Identity())
	if ops != nil || in.State() != Idle {
		t.Errorf("Marker press started a session: ops=%+v state=%v", ops, in.State())
	}
	if ops := in.Handle(Event{Kind: Move, Source: Mouse, X: 50, Y: 50}, Identity()); ops != nil {
		t.Errorf("Move after marker press emitted %+v", ops)
	}

	ops = in.Handle(Event{Kind: Press, Source: Touch, ID: 1, OnMarker: true}, Identity())
	if ops != nil || in.State() != Idle {
		t.Errorf("Marker touch started a session: ops=%+v state=%v", ops, in.State())
	}
}

func TestInterpreter_PinchIncrementalRatio(t *testing.T) {
	in := NewInterpreter()
	cur := Identity()

	in.Handle(Event{Kind: Press, Source: Touch, ID: 1, X: 0, Y: 0}, cur)
	if in.State() != Dragging {
		t.Fatalf("One finger should drag, got %v", in.State())
	}
	ops := in.Handle(Event{Kind: Press, Source: Touch, ID: 2, X: 50, Y: 0}, cur)
	if in.State() != Pinching {
		t.Fatalf("Second finger should pinch, got %v", in.State())
	}
	if len(ops) != 1 || ops[0].Kind != OpInterrupt {
		t.Errorf("Pinch start ops = %+v", ops)
	}

	ops = in.Handle(Event{Kind: Move, Source: Touch, ID: 2, X: 75, Y: 0}, cur)
	if len(ops) != 1 || ops[0].Kind != OpZoom || ops[0].Factor != 1.5 {
		t.Fatalf("50 -> 75 should zoom by 1.5, got %+v", ops)
	}

	ops = in.Handle(Event{Kind: Move, Source: Touch, ID: 2, X: 60, Y: 0}, cur)
	if len(ops) != 1 || ops[0].Kind != OpZoom || ops[0].Factor != 0.8 {
		t.Fatalf("75 -> 60 should zoom by 0.8, got %+v", ops)
	}
}

func TestInterpreter_PinchEnds(t *testing.T) {
	in := NewInterpreter()
	cur := Identity()
	in.Handle(Event{Kind: Press, Source: Touch, ID: 1, X: 0, Y: 0}, cur)
	in.Handle(Event{Kind: Press, Source: Touch, ID: 2, X: 50, Y: 0}, cur)

	in.Handle(Event{Kind: Release, Source: Touch, ID: 2}, cur)
	if in.State() != Idle {
		t.Errorf("Lifting a pinch finger should end the pinch, got %v", in.State())
	}
	if ops := in.Handle(Event{Kind: Move, Source: Touch, ID: 1, X: 30, Y: 30}, cur); ops != nil {
		t.Errorf("Remaining finger should not pan, got %+v", ops)
	}

	in.Handle(Event{Kind: Release, Source: Touch, ID: 1}, cur)
	if in.State() != Idle {
		t.Errorf("State after all touches lifted = %v", in.State())
	}

	// A new session starts fresh
	in.Handle(Event{Kind: Press, Source: Touch, ID: 3, X: 0, Y: 0}, cur)
	in.Handle(Event{Kind: Press, Source: Touch, ID: 4, X: 0, Y: 100}, cur)
	ops := in.Handle(Event{Kind: Move, Source: Touch, ID: 4, X: 0, Y: 200}, cur)
	if len(ops) != 1 || ops[0].Factor != 2 {
		t.Errorf("New pinch should measure from its own start, got %+v", ops)
	}
}

func TestInterpreter_ZeroDistancePinch(t *testing.T) {
	in := NewInterpreter()
	cur := Identity()
	in.Handle(Event{Kind: Press, Source: Touch, ID: 1, X: 10, Y: 10}, cur)
	in.Handle(Event{Kind: Press, Source: Touch, ID: 2, X: 10, Y: 10}, cur)

	if ops := in.Handle(Event{Kind: Move, Source: Touch, ID: 2, X: 20, Y: 10}, cur); ops != nil {
		t.Errorf("Zoom from zero distance emitted %+v", ops)
	}
	ops := in.Handle(Event{Kind: Move, Source: Touch, ID: 2, X: 30, Y: 10}, cur)
	if len(ops) != 1 || ops[0].Factor != 2 {
		t.Errorf("Expected factor 2 once distance is known, got %+v", ops)
	}
}

func TestInterpreter_TouchDrag(t *testing.T) {
	in := NewInterpreter()
	cur := Identity()
	in.Handle(Event{Kind: Press, Source: Touch, ID: 7, X: 100, Y: 100}, cur)

	ops := in.Handle(Event{Kind: Move, Source: Touch, ID: 7, X: 90, Y: 140}, cur)
	if len(ops) != 1 || ops[0].Kind != OpPan {
		t.Fatalf("Expected pan, got %+v", ops)
	}
	got := DefaultEngine().PanTo(cur, ops[0].X, ops[0].Y, ops[0].Origin)
	if got.TranslateX != -10 || got.TranslateY != 40 {
		t.Errorf("Touch pan = %+v", got)
	}

	in.Handle(Event{Kind: Cancel, Source: Touch, ID: 7}, cur)
	if in.State() != Idle {
		t.Errorf("Cancel should end the drag, got %v", in.State())
	}
}

func TestInterpreter_Wheel(t *testing.T) {
	in := NewInterpreter()
	tests := []struct {
		scrollY float64
		factor  float64
	}{
		{-1, DefaultWheelZoomIn},
		{3, DefaultWheelZoomOut},
	}
	for _, tt := range tests {
		ops := in.Handle(Event{Kind: Scroll, X: 12, Y: 34, ScrollY: tt.scrollY}, Identity())
		if len(ops) != 2 || ops[1].Kind != OpZoomAt {
			t.Fatalf("Wheel ops = %+v", ops)
		}
		if ops[1].Factor != tt.factor || ops[1].X != 12 || ops[1].Y != 34 {
			t.Errorf("Wheel %v = %+v, want factor %v at (12,34)", tt.scrollY, ops[1], tt.factor)
		}
	}

	if ops := in.Handle(Event{Kind: Scroll}, Identity()); ops != nil {
		t.Errorf("Zero scroll emitted %+v", ops)
	}
	if in.State() != Idle {
		t.Errorf("Wheel changed session state to %v", in.State())
	}
}

func TestInterpreter_WheelDuringDragKeepsSession(t *testing.T) {
	in := NewInterpreter()
	in.Handle(Event{Kind: Press, Source: Mouse}, Identity())
	in.Handle(Event{Kind: Scroll, ScrollY: -1}, Identity())
	if in.State() != Dragging {
		t.Errorf("Wheel should not affect the drag session, got %v", in.State())
	}
}

func TestInterpreter_Reset(t *testing.T) {
	in := NewInterpreter()
	in.Handle(Event{Kind: Press, Source: Touch, ID: 1}, Identity())
	in.Handle(Event{Kind: Press, Source: Touch, ID: 2, X: 10}, Identity())
	in.Reset()
	if in.State() != Idle {
		t.Errorf("State after Reset = %v", in.State())
	}
	if ops := in.Handle(Event{Kind: Move, Source: Touch, ID: 2, X: 20}, Identity()); ops != nil {
		t.Errorf("Stale touch emitted %+v", ops)
	}
}

func TestGestureStateString(t *testing.T) {
	if Pinching.String() != "Pinching" {
		t.Errorf("String() = %q", Pinching.String())
	}
}
