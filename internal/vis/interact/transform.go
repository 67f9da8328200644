// Package interact handles user interactions like pan, zoom, and hotspot
// focus. The engine is pure: every operation takes a Transform and returns a
// new one. Camera owns the current Transform for a viewing session.
package interact

import "math"

// Default scale bounds.
const (
	DefaultMinScale = 0.5
	DefaultMaxScale = 5.0
)

// Transform is the viewport's pan/zoom state. Translation is in viewport
// pixels and, like scale, is relative to the image centre.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity returns the untransformed view.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Lerp interpolates between t and to. alpha 0 yields t, 1 yields to.
func (t Transform) Lerp(to Transform, alpha float64) Transform {
	return Transform{
		Scale:      t.Scale + alpha*(to.Scale-t.Scale),
		TranslateX: t.TranslateX + alpha*(to.TranslateX-t.TranslateX),
		TranslateY: t.TranslateY + alpha*(to.TranslateY-t.TranslateY),
	}
}

// Bounds limits the scale of a Transform.
type Bounds struct {
	Min float64
	Max float64
}

// DefaultBounds returns the 0.5x to 5x zoom range.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinScale, Max: DefaultMaxScale}
}

// Valid reports whether the bounds are finite, positive and ordered.
func (b Bounds) Valid() bool {
	return isPositiveFinite(b.Min) && isPositiveFinite(b.Max) && b.Min <= b.Max
}

// Clamp limits s to the bounds. NaN clamps to Min.
func (b Bounds) Clamp(s float64) float64 {
	if math.IsNaN(s) || s < b.Min {
		return b.Min
	}
	if s > b.Max {
		return b.Max
	}
	return s
}

// Geometry is a snapshot of the viewport and rendered image size in pixels.
// It is supplied fresh on every call since the container can resize.
type Geometry struct {
	ViewportW float64
	ViewportH float64
	ImageW    float64 // Rendered (untransformed) image width
	ImageH    float64
}

// Center returns the viewport centre.
func (g Geometry) Center() (x, y float64) {
	return g.ViewportW / 2, g.ViewportH / 2
}

// HasViewport reports whether the viewport has a usable size.
func (g Geometry) HasViewport() bool {
	return g.ViewportW > 0 && g.ViewportH > 0
}

// HasImage reports whether the rendered image has a usable size.
func (g Geometry) HasImage() bool {
	return g.ImageW > 0 && g.ImageH > 0
}

// FitGeometry sizes an image of natural size naturalW x naturalH to fit
// inside the viewport, preserving aspect ratio and never upscaling.
func FitGeometry(viewportW, viewportH, naturalW, naturalH float64) Geometry {
	g := Geometry{ViewportW: viewportW, ViewportH: viewportH}
	if naturalW <= 0 || naturalH <= 0 || viewportW <= 0 || viewportH <= 0 {
		return g
	}

	fit := math.Min(viewportW/naturalW, viewportH/naturalH)
	if fit > 1 {
		fit = 1
	}
	g.ImageW = naturalW * fit
	g.ImageH = naturalH * fit
	return g
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
