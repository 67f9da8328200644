package interact

import (
	"testing"
	"time"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
)

func newTestCamera() (*Camera, *fakeClock, *[]Transform) {
	clock := &fakeClock{t: time.Unix(2000, 0)}
	cam := NewCamera(DefaultEngine(), DefaultFocusDuration)
	cam.Animator().SetClock(clock.now)

	var seen []Transform
	cam.AddListener(ListenerFunc(func(t Transform) { seen = append(seen, t) }))
	return cam, clock, &seen
}

func TestCamera_InstantOperationsNotify(t *testing.T) {
	cam, _, seen := newTestCamera()
	g := Geometry{ViewportW: 800, ViewportH: 600, ImageW: 800, ImageH: 600}

	cam.ZoomBy(2)
	cam.ZoomAt(2, 400, 300, g)
	cam.PanTo(50, 60, DragOrigin{})

	want := Transform{Scale: 4, TranslateX: 50, TranslateY: 60}
	if cam.Transform() != want {
		t.Errorf("Transform = %+v, want %+v", cam.Transform(), want)
	}
	if len(*seen) != 3 {
		t.Errorf("Expected 3 notifications, got %d", len(*seen))
	}

	cam.Reset()
	if cam.Transform() != Identity() {
		t.Errorf("Reset left %+v", cam.Transform())
	}
}

func TestCamera_FocusAnimates(t *testing.T) {
	cam, clock, seen := newTestCamera()
	g := Geometry{ViewportW: 800, ViewportH: 600, ImageW: 800, ImageH: 600}
	h := core.Hotspot{X: 75, Y: 25, Zoom: 6}

	target := cam.Focus(h, g)
	if !cam.Animating() {
		t.Fatal("Focus should animate")
	}
	if cam.Transform() != Identity() {
		t.Errorf("Focus applied instantly: %+v", cam.Transform())
	}

	for cam.Tick(clock.advance(16 * time.Millisecond)) {
	}
	if cam.Transform() != target {
		t.Errorf("Focus ended at %+v, want %+v", cam.Transform(), target)
	}
	if last := (*seen)[len(*seen)-1]; last != target {
		t.Errorf("Last notification %+v, want target", last)
	}

	x, y := ScreenPositionOf(cam.Transform(), g, h)
	if !near(x, 400) || !near(y, 300) {
		t.Errorf("Focused hotspot at (%v,%v), want viewport centre", x, y)
	}
}

func TestCamera_GestureInterruptsFocus(t *testing.T) {
	cam, clock, _ := newTestCamera()
	g := Geometry{ViewportW: 800, ViewportH: 600, ImageW: 800, ImageH: 600}
	in := NewInterpreter()

	cam.Focus(core.Hotspot{X: 10, Y: 10}, g)
	cam.Tick(clock.advance(100 * time.Millisecond))
	mid := cam.Transform()

	for _, op := range in.Handle(Event{Kind: Press, Source: Mouse, X: 200, Y: 200}, cam.Transform()) {
		cam.Apply(op, g)
	}
	if cam.Animating() {
		t.Fatal("Drag start should cancel the focus animation")
	}
	if cam.Transform() != mid {
		t.Errorf("Cancel moved the view: %+v -> %+v", mid, cam.Transform())
	}

	for _, op := range in.Handle(Event{Kind: Move, Source: Mouse, X: 210, Y: 195}, cam.Transform()) {
		cam.Apply(op, g)
	}
	want := Transform{Scale: mid.Scale, TranslateX: mid.TranslateX + 10, TranslateY: mid.TranslateY - 5}
	if !transformNear(cam.Transform(), want) {
		t.Errorf("Pan from interrupted state = %+v, want %+v", cam.Transform(), want)
	}

	// No leftover interpolation
	if cam.Tick(clock.advance(time.Second)) {
		t.Error("Animation resumed after interruption")
	}
	if !transformNear(cam.Transform(), want) {
		t.Errorf("Tick changed transform after interruption: %+v", cam.Transform())
	}
}

func TestCamera_InstantChangeCancelsFocus(t *testing.T) {
	cam, clock, _ := newTestCamera()
	g := Geometry{ViewportW: 800, ViewportH: 600, ImageW: 800, ImageH: 600}

	cam.Focus(core.Hotspot{X: 90, Y: 90}, g)
	cam.Tick(clock.advance(50 * time.Millisecond))
	cam.Reset()

	if cam.Animating() {
		t.Error("Reset should cancel the animation")
	}
	cam.Tick(clock.advance(time.Second))
	if cam.Transform() != Identity() {
		t.Errorf("Transform after reset = %+v", cam.Transform())
	}
}

func TestCamera_ApplyPinchZoom(t *testing.T) {
	cam, _, _ := newTestCamera()
	cam.Apply(Op{Kind: OpZoom, Factor: 1.5}, Geometry{})
	cam.Apply(Op{Kind: OpZoom, Factor: 0.8}, Geometry{})
	if !near(cam.Transform().Scale, 1.2) {
		t.Errorf("Scale after pinch = %v, want 1.2", cam.Transform().Scale)
	}
}
