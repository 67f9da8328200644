package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// circlePath approximates a circle with a closed polygon.
func circlePath(gtx layout.Context, cx, cy, radius float32) clip.PathSpec {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx+radius, cy))

	segments := 24
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.LineTo(f32.Pt(x, y))
	}
	path.Close()

	return path.End()
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: circlePath(gtx, cx, cy, radius)}.Op())
}

func drawRing(gtx layout.Context, cx, cy, radius, width float32, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: circlePath(gtx, cx, cy, radius), Width: width}.Op())
}
