package interact

import (
	"time"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
)

// Listener is notified whenever the camera's transform changes.
type Listener interface {
	TransformChanged(t Transform)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Transform)

// TransformChanged calls f(t).
func (f ListenerFunc) TransformChanged(t Transform) { f(t) }

// Camera owns the current view transform of a viewing session. Every change
// passes through its animator: gestures apply with zero duration, hotspot
// focus animates.
type Camera struct {
	engine        Engine
	anim          *Animator
	focusDuration time.Duration
	listeners     []Listener
}

// NewCamera creates a camera at the identity transform.
func NewCamera(engine Engine, focusDuration time.Duration) *Camera {
	c := &Camera{
		engine:        engine,
		focusDuration: focusDuration,
	}
	c.anim = NewAnimator(Identity(), c.notify)
	return c
}

// Engine returns the camera's transform engine.
func (c *Camera) Engine() Engine {
	return c.engine
}

// Animator exposes the scheduler, mainly for clock injection in tests.
func (c *Camera) Animator() *Animator {
	return c.anim
}

// AddListener registers l for transform notifications.
func (c *Camera) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Transform returns the current transform, mid-animation included.
func (c *Camera) Transform() Transform {
	return c.anim.Current()
}

// Animating reports whether a focus transition is in flight.
func (c *Camera) Animating() bool {
	return c.anim.Active()
}

// Tick advances any focus transition; call it once per frame.
func (c *Camera) Tick(now time.Time) bool {
	return c.anim.Tick(now)
}

// Interrupt stops a focus transition where it is.
func (c *Camera) Interrupt() {
	c.anim.Cancel()
}

// ZoomBy zooms about the viewport centre, e.g. for toolbar buttons.
func (c *Camera) ZoomBy(factor float64) {
	c.set(c.engine.DiscreteZoom(c.Transform(), factor))
}

// ZoomAt zooms keeping the point under the pointer fixed.
func (c *Camera) ZoomAt(factor, pointerX, pointerY float64, g Geometry) {
	c.set(c.engine.ZoomAtPoint(c.Transform(), factor, pointerX, pointerY, g))
}

// PanTo moves the view to follow the pointer.
func (c *Camera) PanTo(pointerX, pointerY float64, origin DragOrigin) {
	c.set(c.engine.PanTo(c.Transform(), pointerX, pointerY, origin))
}

// Reset returns to the identity view.
func (c *Camera) Reset() {
	c.set(c.engine.Reset())
}

// Focus starts the animated transition that centres h, returning the target.
func (c *Camera) Focus(h core.Hotspot, g Geometry) Transform {
	target := c.engine.FocusOn(h, g.ImageW, g.ImageH)
	c.anim.AnimateTo(target, c.focusDuration)
	return target
}

// Apply executes an operation emitted by the gesture interpreter.
func (c *Camera) Apply(op Op, g Geometry) {
	switch op.Kind {
	case OpInterrupt:
		c.Interrupt()
	case OpPan:
		c.PanTo(op.X, op.Y, op.Origin)
	case OpZoom:
		c.ZoomBy(op.Factor)
	case OpZoomAt:
		c.ZoomAt(op.Factor, op.X, op.Y, g)
	}
}

// set applies t instantly, cancelling any transition in flight.
func (c *Camera) set(t Transform) {
	c.anim.AnimateTo(t, 0)
}

func (c *Camera) notify(t Transform) {
	for _, l := range c.listeners {
		l.TransformChanged(t)
	}
}
