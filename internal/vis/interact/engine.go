package interact

import (
	"math"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
)

// DragOrigin is the pointer position minus the translation captured when a
// drag starts. Panning keeps translation at pointer minus this offset.
type DragOrigin struct {
	OffsetX float64
	OffsetY float64
}

// NewDragOrigin captures the drag offset for a pointer at (x, y).
func NewDragOrigin(x, y float64, t Transform) DragOrigin {
	return DragOrigin{
		OffsetX: x - t.TranslateX,
		OffsetY: y - t.TranslateY,
	}
}

// Engine computes new transforms for gestures and hotspot focus. All
// operations succeed: inputs are clamped or ignored, never rejected.
type Engine struct {
	Bounds      Bounds
	DefaultZoom float64 // Focus scale for hotspots without their own zoom

	// ClampFocus limits focus targets to Bounds. Hotspots may otherwise ask
	// for more zoom than interactive gestures allow.
	ClampFocus bool
}

// NewEngine creates an engine. Invalid bounds or default zoom fall back to
// the defaults.
func NewEngine(bounds Bounds, defaultZoom float64) Engine {
	if !bounds.Valid() {
		bounds = DefaultBounds()
	}
	if !isPositiveFinite(defaultZoom) {
		defaultZoom = core.DefaultHotspotZoom
	}
	return Engine{Bounds: bounds, DefaultZoom: defaultZoom}
}

// DefaultEngine returns an engine with default bounds and focus zoom.
func DefaultEngine() Engine {
	return NewEngine(DefaultBounds(), core.DefaultHotspotZoom)
}

// DiscreteZoom multiplies the scale by factor. Translation is unchanged.
func (e Engine) DiscreteZoom(s Transform, factor float64) Transform {
	if !isPositiveFinite(factor) {
		return s
	}
	s.Scale = e.Bounds.Clamp(e.currentScale(s) * factor)
	return s
}

// ZoomAtPoint zooms by factor while keeping the image point under the
// pointer (viewport coordinates) fixed on screen.
func (e Engine) ZoomAtPoint(s Transform, factor, pointerX, pointerY float64, g Geometry) Transform {
	if !isPositiveFinite(factor) || !g.HasViewport() {
		return s
	}

	scale := e.currentScale(s)
	newScale := e.Bounds.Clamp(scale * factor)
	if newScale == scale {
		s.Scale = scale
		return s
	}

	// Pointer relative to the viewport centre, the transform origin
	cx, cy := g.Center()
	mouseX := pointerX - cx
	mouseY := pointerY - cy

	change := newScale / scale
	return Transform{
		Scale:      newScale,
		TranslateX: mouseX - (mouseX-s.TranslateX)*change,
		TranslateY: mouseY - (mouseY-s.TranslateY)*change,
	}
}

// currentScale returns s.Scale, which may lie outside Bounds after an
// unclamped focus. Only a zero, negative or non-finite scale is replaced.
func (e Engine) currentScale(s Transform) float64 {
	if isPositiveFinite(s.Scale) {
		return s.Scale
	}
	return e.Bounds.Clamp(s.Scale)
}

// PanTo moves the view so the image follows the pointer 1:1.
func (e Engine) PanTo(s Transform, pointerX, pointerY float64, origin DragOrigin) Transform {
	s.TranslateX = pointerX - origin.OffsetX
	s.TranslateY = pointerY - origin.OffsetY
	return s
}

// Reset returns the identity transform regardless of the current state.
func (e Engine) Reset() Transform {
	return Identity()
}

// FocusScale returns the scale FocusOn targets for h.
func (e Engine) FocusScale(h core.Hotspot) float64 {
	scale := h.TargetZoom(e.DefaultZoom)
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = e.DefaultZoom
	}
	if e.ClampFocus {
		scale = e.Bounds.Clamp(scale)
	}
	return scale
}

// FocusOn returns the transform that centres h in the viewport at the
// hotspot's zoom. The caller animates towards it.
func (e Engine) FocusOn(h core.Hotspot, imageW, imageH float64) Transform {
	scale := e.FocusScale(h)
	localX, localY := ImageLocal(h.X, h.Y, imageW, imageH)
	return Transform{
		Scale:      scale,
		TranslateX: -localX * scale,
		TranslateY: -localY * scale,
	}
}
