package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

// Toolbar provides navigation and zoom buttons.
type Toolbar struct {
	session *state.Session

	// Button zoom factors
	zoomIn, zoomOut float64

	// Navigation
	prevBtn widget.Clickable
	nextBtn widget.Clickable

	// Zoom
	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	resetBtn   widget.Clickable
}

// NewToolbar creates a new toolbar.
func NewToolbar(s *state.Session, zoomIn, zoomOut float64) *Toolbar {
	return &Toolbar{
		session: s,
		zoomIn:  zoomIn,
		zoomOut: zoomOut,
	}
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := 48

	// Background
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	// Handle button clicks
	t.handleClicks(gtx)

	// Layout buttons
	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceStart}.Layout(gtx,
			// Artwork navigation
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutNavControls(gtx, th)
			}),

			// Separator
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutSeparator(gtx)
			}),

			// Zoom controls
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutZoomControls(gtx, th)
			}),

			// Spacer
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),

			// Status
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutStatus(gtx, th)
			}),
		)
	})
}

func (t *Toolbar) layoutNavControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.prevBtn, "<")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.nextBtn, ">")
		}),
	)
}

func (t *Toolbar) layoutZoomControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.zoomOutBtn, "-")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.zoomInBtn, "+")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.resetBtn, "Reset")
		}),
	)
}

func (t *Toolbar) layoutStatus(gtx layout.Context, th *material.Theme) layout.Dimensions {
	text := fmt.Sprintf("%.0f%%", t.session.Camera.Transform().Scale*100)
	if artwork, _ := t.session.Current(); artwork != nil && len(artwork.Hotspots) > 0 {
		text = fmt.Sprintf("Clues %d/%d   %s", t.session.ViewedCount(), len(artwork.Hotspots), text)
	}

	label := material.Label(th, 12, text)
	label.Color = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
	return label.Layout(gtx)
}

func (t *Toolbar) layoutSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

func (t *Toolbar) buttonBase(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string) layout.Dimensions {
	return flatButton(gtx, th, btn, text, false)
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	// Navigation
	for t.prevBtn.Clicked(gtx) {
		t.session.Prev()
	}
	for t.nextBtn.Clicked(gtx) {
		t.session.Next()
	}

	// Zoom
	for t.zoomInBtn.Clicked(gtx) {
		t.session.Camera.ZoomBy(t.zoomIn)
	}
	for t.zoomOutBtn.Clicked(gtx) {
		t.session.Camera.ZoomBy(t.zoomOut)
	}
	for t.resetBtn.Clicked(gtx) {
		t.session.ResetView()
	}
}

// flatButton draws a dark rectangular button with a centred label.
func flatButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg = lighten(bg, 15)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 32, Y: 28}
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 12, text)
						label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
						return label.Layout(gtx)
					})
				})
			},
		)
	})
}

// lighten adds d to each color channel, saturating at 255.
func lighten(c color.NRGBA, d int) color.NRGBA {
	c.R = uint8(min(int(c.R)+d, 255))
	c.G = uint8(min(int(c.G)+d, 255))
	c.B = uint8(min(int(c.B)+d, 255))
	return c
}
