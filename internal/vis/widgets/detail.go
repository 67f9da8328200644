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

	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/draw"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

// Panel colors
var (
	ColorPanel      = color.NRGBA{R: 35, G: 38, B: 42, A: 255}
	ColorPanelTitle = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	ColorPanelText  = color.NRGBA{R: 190, G: 190, B: 190, A: 255}
	ColorPanelMuted = color.NRGBA{R: 140, G: 145, B: 150, A: 255}
)

// Detail is the side panel. It shows the open hotspot's detail, or the
// loaded artwork's info when no hotspot is open.
type Detail struct {
	session *state.Session
	images  *draw.Images

	list     layout.List
	closeBtn widget.Clickable
}

// NewDetail creates a new detail panel.
func NewDetail(s *state.Session, images *draw.Images) *Detail {
	return &Detail{
		session: s,
		images:  images,
		list:    layout.List{Axis: layout.Vertical},
	}
}

// Layout renders the panel.
func (d *Detail) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	width := gtx.Dp(unit.Dp(320))
	height := gtx.Constraints.Max.Y

	// Background
	rect := image.Rect(0, 0, width, height)
	paint.FillShape(gtx.Ops, ColorPanel, clip.Rect(rect).Op())

	for d.closeBtn.Clicked(gtx) {
		d.session.CloseDetail()
	}

	gtx.Constraints = layout.Exact(image.Pt(width, height))

	var rows []layout.Widget
	if ev, ok := d.session.Detail(); ok {
		rows = d.hotspotRows(th, ev)
	} else if artwork, _ := d.session.Current(); artwork != nil {
		rows = d.artworkRows(th, artwork)
	}

	layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return d.list.Layout(gtx, len(rows), func(gtx layout.Context, i int) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, rows[i])
		})
	})

	return layout.Dimensions{Size: image.Point{X: width, Y: height}}
}

func (d *Detail) artworkRows(th *material.Theme, artwork *core.Artwork) []layout.Widget {
	rows := []layout.Widget{
		d.text(material.H5(th, artwork.Title), ColorPanelTitle),
	}
	if byline := artwork.Byline(); byline != "" {
		rows = append(rows, d.text(material.Body2(th, byline), ColorPanelMuted))
	}
	rows = append(rows, d.text(material.Body1(th, artwork.Description), ColorPanelText))

	if n := len(artwork.Hotspots); n > 0 {
		hint := fmt.Sprintf("%d clues hidden in this painting. Click a marker to investigate.", n)
		rows = append(rows, d.text(material.Caption(th, hint), ColorPanelMuted))
	}
	return rows
}

func (d *Detail) hotspotRows(th *material.Theme, ev state.HotspotEvent) []layout.Widget {
	rows := []layout.Widget{
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, d.text(material.H6(th, ev.Title), ColorPanelTitle)),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return flatButton(gtx, th, &d.closeBtn, "Close", false)
				}),
			)
		},
	}

	if ev.DetailImage != "" {
		pic := d.images.Get(ev.DetailImage)
		rows = append(rows, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(200))
			img := widget.Image{Src: pic.Op, Fit: widget.Contain, Position: layout.N}
			return img.Layout(gtx)
		})
	}

	rows = append(rows, d.text(material.Body1(th, ev.Description), ColorPanelText))

	if artwork, _ := d.session.Current(); artwork != nil {
		progress := fmt.Sprintf("Clue %d of %d  (%d viewed)", ev.Index+1, len(artwork.Hotspots), d.session.ViewedCount())
		rows = append(rows, d.text(material.Caption(th, progress), ColorPanelMuted))
	}
	return rows
}

func (d *Detail) text(label material.LabelStyle, col color.NRGBA) layout.Widget {
	label.Color = col
	return label.Layout
}
