package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Tobotis/interactive-art-gallery/internal/vis/draw"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

// Thumbnail cell size in dp
const (
	thumbWidth  = 112
	thumbHeight = 64
)

// Gallery is the strip of artwork thumbnails along the bottom edge.
type Gallery struct {
	session *state.Session
	images  *draw.Images

	list  layout.List
	items []widget.Clickable
}

// NewGallery creates a gallery strip for the session's catalog.
func NewGallery(s *state.Session, images *draw.Images) *Gallery {
	return &Gallery{
		session: s,
		images:  images,
		list:    layout.List{Axis: layout.Horizontal},
		items:   make([]widget.Clickable, s.Catalog.Len()),
	}
}

// Layout renders the gallery.
func (g *Gallery) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(thumbHeight + 36))

	// Background
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	// Handle clicks
	for i := range g.items {
		for g.items[i].Clicked(gtx) {
			g.session.SelectArtwork(i)
		}
	}

	_, active := g.session.Current()

	gtx.Constraints.Max.Y = height
	layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return g.list.Layout(gtx, len(g.items), func(gtx layout.Context, i int) layout.Dimensions {
			return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return g.layoutItem(gtx, th, i, i == active)
			})
		})
	})

	return layout.Dimensions{Size: image.Point{X: gtx.Constraints.Max.X, Y: height}}
}

func (g *Gallery) layoutItem(gtx layout.Context, th *material.Theme, i int, active bool) layout.Dimensions {
	artwork := g.session.Catalog.At(i)
	pic := g.images.Get(artwork.ThumbnailRef())
	size := image.Pt(gtx.Dp(unit.Dp(thumbWidth)), gtx.Dp(unit.Dp(thumbHeight)))

	return g.items[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				// Frame, highlighted for the loaded artwork
				frame := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
				if active {
					frame = color.NRGBA{R: 255, G: 196, B: 0, A: 255}
				} else if g.items[i].Hovered() {
					frame = color.NRGBA{R: 90, G: 95, B: 105, A: 255}
				}
				paint.FillShape(gtx.Ops, frame, clip.Rect(image.Rectangle{Max: size}).Op())

				gtx.Constraints = layout.Exact(size)
				return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					img := widget.Image{Src: pic.Op, Fit: widget.Contain, Position: layout.Center}
					return img.Layout(gtx)
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Max.X = size.X
				label := material.Label(th, 11, artwork.Title)
				label.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
				label.MaxLines = 1
				label.Alignment = text.Middle
				return label.Layout(gtx)
			}),
		)
	})
}
