package interact

import "github.com/Tobotis/interactive-art-gallery/internal/core"

// ImageLocal converts hotspot percentages into pixels relative to the centre
// of the rendered image. Percentages outside [0,100] are not clamped.
func ImageLocal(xPct, yPct, imageW, imageH float64) (x, y float64) {
	x = (xPct/100 - 0.5) * imageW
	y = (yPct/100 - 0.5) * imageH
	return
}

// ScreenPosition converts percentage coordinates to viewport coordinates
// under the transform t.
func ScreenPosition(t Transform, g Geometry, xPct, yPct float64) (screenX, screenY float64) {
	localX, localY := ImageLocal(xPct, yPct, g.ImageW, g.ImageH)
	cx, cy := g.Center()
	screenX = cx + t.TranslateX + localX*t.Scale
	screenY = cy + t.TranslateY + localY*t.Scale
	return
}

// ScreenPositionOf returns where the hotspot currently appears in the viewport.
func ScreenPositionOf(t Transform, g Geometry, h core.Hotspot) (screenX, screenY float64) {
	return ScreenPosition(t, g, h.X, h.Y)
}

// PercentAt maps a viewport point back to image percentages. ok is false when
// the image has no size or the scale is not positive.
func PercentAt(t Transform, g Geometry, screenX, screenY float64) (xPct, yPct float64, ok bool) {
	if !g.HasImage() || !isPositiveFinite(t.Scale) {
		return 0, 0, false
	}

	cx, cy := g.Center()
	localX := (screenX - cx - t.TranslateX) / t.Scale
	localY := (screenY - cy - t.TranslateY) / t.Scale
	xPct = (localX/g.ImageW + 0.5) * 100
	yPct = (localY/g.ImageH + 0.5) * 100
	return xPct, yPct, true
}
