package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tobotis/interactive-art-gallery/internal/vis/draw"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
)

func newProbeCmd(g *globals) *cobra.Command {
	var viewport, imageSize string
	var t interact.Transform
	var artwork int

	cmd := &cobra.Command{
		Use:   "probe <x> <y>",
		Short: "Map a screen point to image percentages under a view transform",
		Example: `  # Which part of the image is under the viewport centre at 2x zoom?
  artviewer probe 400 300 --scale 2 --tx -200

  # Also report the hotspot marker under the point
  artviewer probe 200 150 --artwork 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[0], err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[1], err)
			}

			geom, err := geometryFromFlags(viewport, imageSize)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			px, py, ok := interact.PercentAt(t, geom, x, y)
			if !ok {
				return fmt.Errorf("point cannot be mapped under %s", formatTransform(t))
			}
			fmt.Fprintf(out, "image      (%.2f%%, %.2f%%)\n", px, py)
			if px < 0 || px > 100 || py < 0 || py > 100 {
				fmt.Fprintln(out, "           outside the image")
			}

			if artwork < 0 {
				return nil
			}
			cat, err := g.loadCatalog()
			if err != nil {
				return err
			}
			ai, err := parseIndex("artwork", strconv.Itoa(artwork), cat.Len())
			if err != nil {
				return err
			}
			hotspots := cat.At(ai).Hotspots
			if i := draw.HotspotAt(x, y, hotspots, t, geom); i >= 0 {
				fmt.Fprintf(out, "hotspot    %d. %s\n", i, hotspots[i].Title)
			} else {
				fmt.Fprintln(out, "hotspot    none")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&viewport, "viewport", "800x600", "Viewport size WxH in pixels")
	cmd.Flags().StringVar(&imageSize, "image", "", "Natural image size WxH (default: same as viewport)")
	cmd.Flags().Float64Var(&t.Scale, "scale", 1, "View scale")
	cmd.Flags().Float64Var(&t.TranslateX, "tx", 0, "Horizontal translation in pixels")
	cmd.Flags().Float64Var(&t.TranslateY, "ty", 0, "Vertical translation in pixels")
	cmd.Flags().IntVar(&artwork, "artwork", -1, "Artwork whose markers to hit-test")

	return cmd
}
