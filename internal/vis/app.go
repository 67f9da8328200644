// Package vis implements the Gio-based artwork viewer.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/Tobotis/interactive-art-gallery/internal/config"
	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/logging"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/draw"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/observer"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/widgets"
)

// App is the main viewer application.
type App struct {
	cfg     *config.Config
	session *state.Session
	theme   *material.Theme
	viewer  *widgets.Viewer
	toolbar *widgets.Toolbar
	gallery *widgets.Gallery
	detail  *widgets.Detail
}

// NewApp creates a viewer over cat and loads its first artwork.
func NewApp(cfg *config.Config, cat *core.Catalog) *App {
	th := material.NewTheme()

	camera := interact.NewCamera(cfg.Engine(), cfg.FocusDuration)
	session := state.NewSession(cat, camera)
	observer.Attach(session, observer.NewLogObserver(logging.Logger()))

	images := draw.NewImages(cat.Resolve)

	a := &App{
		cfg:     cfg,
		session: session,
		theme:   th,
		viewer:  widgets.NewViewer(session, cfg.Interpreter(), images),
		toolbar: widgets.NewToolbar(session, cfg.ButtonZoomIn, cfg.ButtonZoomOut),
		gallery: widgets.NewGallery(session, images),
		detail:  widgets.NewDetail(session, images),
	}
	session.Start()
	return a
}

// Session returns the viewing session driven by the app.
func (a *App) Session() *state.Session {
	return a.session
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	// Event filters for keyboard input
	tag := new(int)
	focused := false

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// Advance any running focus animation
			a.session.Camera.Tick(gtx.Now)

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModCtrl | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)
			if !focused {
				gtx.Execute(key.FocusCmd{Tag: tag})
				focused = true
			}

			a.layout(gtx)
			e.Frame(gtx.Ops)

			// Request continuous redraws while animating
			if a.session.Camera.Animating() {
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameEscape:
		a.session.CloseDetail()
	case "+", "=":
		a.session.Camera.ZoomBy(a.cfg.ButtonZoomIn)
	case "-":
		a.session.Camera.ZoomBy(a.cfg.ButtonZoomOut)
	case "0":
		a.session.ResetView()
	case key.NameLeftArrow:
		a.session.Prev()
	case key.NameRightArrow:
		a.session.Next()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Main content area
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				// Artwork viewer
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return a.viewer.Layout(gtx, a.theme)
				}),
				// Info and hotspot detail
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return a.detail.Layout(gtx, a.theme)
				}),
			)
		}),
		// Gallery strip at bottom
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.gallery.Layout(gtx, a.theme)
		}),
	)
}
