package draw

import (
	"image/color"
	"math"

	"gioui.org/layout"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
)

// MarkerRadius is the on-screen marker radius at scale 1.
const MarkerRadius = 14

// Marker colors
var (
	ColorMarker       = color.NRGBA{R: 255, G: 196, B: 0, A: 230}
	ColorMarkerViewed = color.NRGBA{R: 120, G: 200, B: 140, A: 230}
	ColorMarkerRing   = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
)

// MarkerScale shrinks markers as the view zooms in, down to half size.
func MarkerScale(scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return math.Max(1/scale, 0.5)
}

// HotspotAt returns the index of the top-most marker under (x, y), or -1.
func HotspotAt(x, y float64, hotspots []core.Hotspot, t interact.Transform, g interact.Geometry) int {
	r := MarkerRadius * MarkerScale(t.Scale)
	// Later markers are drawn on top
	for i := len(hotspots) - 1; i >= 0; i-- {
		sx, sy := interact.ScreenPositionOf(t, g, hotspots[i])
		if math.Hypot(x-sx, y-sy) <= r {
			return i
		}
	}
	return -1
}

// DrawHotspots draws a marker for every hotspot at its current screen
// position. viewed styles markers that were already opened.
func DrawHotspots(gtx layout.Context, hotspots []core.Hotspot, t interact.Transform, g interact.Geometry, viewed func(int) bool) {
	r := float32(MarkerRadius * MarkerScale(t.Scale))

	for i, h := range hotspots {
		sx, sy := interact.ScreenPositionOf(t, g, h)
		x, y := float32(sx), float32(sy)

		col := ColorMarker
		if viewed != nil && viewed(i) {
			col = ColorMarkerViewed
		}

		drawFilledCircle(gtx, x, y, r, col)
		drawRing(gtx, x, y, r, 2, ColorMarkerRing)
	}
}
