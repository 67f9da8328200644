// Package widgets provides Gio UI widgets for the viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/logging"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/draw"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

// Viewer is the zoomable artwork area with hotspot markers.
type Viewer struct {
	session *state.Session
	interp  *interact.Interpreter
	images  *draw.Images

	// Geometry of the last layout, used by toolbar and keyboard zooms.
	geom interact.Geometry
}

// NewViewer creates a viewer. It resets the gesture interpreter whenever a
// different artwork is loaded.
func NewViewer(s *state.Session, interp *interact.Interpreter, images *draw.Images) *Viewer {
	v := &Viewer{
		session: s,
		interp:  interp,
		images:  images,
	}
	s.AddListener(state.ListenerFuncs{
		OnArtworkLoaded: func(int, *core.Artwork) { v.interp.Reset() },
	})
	return v
}

// Geometry returns the viewport geometry of the last frame.
func (v *Viewer) Geometry() interact.Geometry {
	return v.geom
}

// Layout renders the viewer.
func (v *Viewer) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	// Clip to bounds
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	artwork, _ := v.session.Current()
	if artwork == nil {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			label := material.Body1(th, "No artworks in catalog")
			label.Color = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
			return label.Layout(gtx)
		})
	}

	pic := v.images.Get(artwork.Image)
	v.geom = interact.FitGeometry(float64(bounds.X), float64(bounds.Y), float64(pic.Size.X), float64(pic.Size.Y))

	// Handle pointer events before drawing so this frame shows their effect
	v.handlePointerEvents(gtx, artwork)

	t := v.session.Camera.Transform()
	draw.DrawArtwork(gtx, pic, t, v.geom)
	draw.DrawHotspots(gtx, artwork.Hotspots, t, v.geom, v.session.IsHotspotViewed)

	return layout.Dimensions{Size: bounds}
}

func (v *Viewer) handlePointerEvents(gtx layout.Context, artwork *core.Artwork) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	// Process events
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  v,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Scroll | pointer.Leave | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			v.handlePointerEvent(pe, artwork)
		}
	}
}

func (v *Viewer) handlePointerEvent(pe pointer.Event, artwork *core.Artwork) {
	ev, ok := TranslatePointer(pe)
	if !ok {
		return
	}

	cam := v.session.Camera
	if ev.Kind == interact.Press {
		if i := draw.HotspotAt(ev.X, ev.Y, artwork.Hotspots, cam.Transform(), v.geom); i >= 0 {
			ev.OnMarker = true
			v.session.OpenHotspot(i, v.geom)
		}
	}

	before := v.interp.State()
	for _, op := range v.interp.Handle(ev, cam.Transform()) {
		cam.Apply(op, v.geom)
	}
	if after := v.interp.State(); after != before {
		logging.Logger().Debug("Gesture state", "from", before, "to", after)
	}
}

// TranslatePointer converts a Gio pointer event into an interpreter event.
// Mouse presses other than the primary button are dropped.
func TranslatePointer(pe pointer.Event) (interact.Event, bool) {
	ev := interact.Event{
		ID: int(pe.PointerID),
		X:  float64(pe.Position.X),
		Y:  float64(pe.Position.Y),
	}
	if pe.Source == pointer.Touch {
		ev.Source = interact.Touch
	}

	switch pe.Kind {
	case pointer.Press:
		if ev.Source == interact.Mouse && !pe.Buttons.Contain(pointer.ButtonPrimary) {
			return ev, false
		}
		ev.Kind = interact.Press
	case pointer.Move, pointer.Drag:
		ev.Kind = interact.Move
	case pointer.Release:
		ev.Kind = interact.Release
	case pointer.Leave:
		ev.Kind = interact.Leave
	case pointer.Cancel:
		ev.Kind = interact.Cancel
	case pointer.Scroll:
		ev.Kind = interact.Scroll
		ev.ScrollY = float64(pe.Scroll.Y)
	default:
		return ev, false
	}
	return ev, true
}
