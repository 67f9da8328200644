package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/observer"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

const traceFrame = 16 * time.Millisecond

func newFocusCmd(g *globals) *cobra.Command {
	var viewport, imageSize string
	var trace bool

	cmd := &cobra.Command{
		Use:   "focus <artwork> <hotspot>",
		Short: "Print the view transform that centres a hotspot",
		Example: `  # Focus the first hotspot of the first artwork in an 800x600 view
  artviewer focus 0 0

  # Show every animation frame for a wide image
  artviewer focus 1 2 --viewport 1280x720 --image 1280x540 --trace`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := g.loadCatalog()
			if err != nil {
				return err
			}
			ai, err := parseIndex("artwork", args[0], cat.Len())
			if err != nil {
				return err
			}
			hi, err := parseIndex("hotspot", args[1], len(cat.At(ai).Hotspots))
			if err != nil {
				return err
			}

			geom, err := geometryFromFlags(viewport, imageSize)
			if err != nil {
				return err
			}

			return runFocus(cmd.OutOrStdout(), g, cat, ai, hi, geom, trace)
		},
	}

	cmd.Flags().StringVar(&viewport, "viewport", "800x600", "Viewport size WxH in pixels")
	cmd.Flags().StringVar(&imageSize, "image", "", "Natural image size WxH (default: same as viewport)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every animation frame")

	return cmd
}

// geometryFromFlags builds the viewport geometry the way the viewer does:
// the image is fitted into the viewport.
func geometryFromFlags(viewport, imageSize string) (interact.Geometry, error) {
	vw, vh, err := parseSize(viewport)
	if err != nil {
		return interact.Geometry{}, err
	}
	nw, nh := vw, vh
	if imageSize != "" {
		if nw, nh, err = parseSize(imageSize); err != nil {
			return interact.Geometry{}, err
		}
	}
	return interact.FitGeometry(vw, vh, nw, nh), nil
}

func runFocus(out io.Writer, g *globals, cat *core.Catalog, ai, hi int, geom interact.Geometry, trace bool) error {
	// Drive the camera from a synthetic clock so the animation can be stepped
	start := time.Unix(0, 0)
	camera := interact.NewCamera(g.cfg.Engine(), g.cfg.FocusDuration)
	camera.Animator().SetClock(func() time.Time { return start })

	session := state.NewSession(cat, camera)
	session.SelectArtwork(ai)

	rec := observer.NewRecorder()
	observer.Attach(session, rec)

	ev := session.OpenHotspot(hi, geom)
	frames := 0
	for now := start; camera.Animating(); now = now.Add(traceFrame) {
		camera.Tick(now)
		frames++
	}

	h := cat.At(ai).Hotspots[hi]
	final := camera.Transform()
	sx, sy := interact.ScreenPositionOf(final, geom, h)

	fmt.Fprintf(out, "%s: %s\n", cat.At(ai).Title, ev.Title)
	fmt.Fprintf(out, "geometry   viewport %gx%g, image %gx%g\n", geom.ViewportW, geom.ViewportH, geom.ImageW, geom.ImageH)
	fmt.Fprintf(out, "hotspot    (%g%%, %g%%) zoom %g\n", h.X, h.Y, camera.Engine().FocusScale(h))
	fmt.Fprintf(out, "transform  %s\n", formatTransform(final))
	fmt.Fprintf(out, "on screen  (%.2f, %.2f)\n", sx, sy)
	fmt.Fprintf(out, "animation  %v, %d frames\n", g.cfg.FocusDuration, frames)

	if trace {
		for i, t := range rec.Transforms {
			fmt.Fprintf(out, "  %3d  %s\n", i, formatTransform(t))
		}
	}
	return nil
}

func formatTransform(t interact.Transform) string {
	return fmt.Sprintf("scale=%.4g tx=%.2f ty=%.2f", t.Scale, t.TranslateX, t.TranslateY)
}
