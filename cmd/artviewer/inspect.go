package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInspectCmd(g *globals) *cobra.Command {
	var showDescriptions bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the artworks and hotspots of the catalog",
		Example: `  # Built-in gallery
  artviewer inspect

  # A custom catalog, with descriptions
  artviewer inspect --catalog ./gallery.yaml --descriptions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := g.loadCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d artworks, %d hotspots\n", cat.Len(), cat.HotspotCount())
			fmt.Fprintln(out, strings.Repeat("=", 60))

			for i := range cat.Len() {
				a := cat.At(i)
				title := a.Title
				if byline := a.Byline(); byline != "" {
					title += " " + byline
				}
				fmt.Fprintf(out, "[%d] %s\n", i, title)
				fmt.Fprintf(out, "    image: %s\n", cat.Resolve(a.Image))
				if showDescriptions && a.Description != "" {
					fmt.Fprintf(out, "    %s\n", a.Description)
				}

				for j, h := range a.Hotspots {
					fmt.Fprintf(out, "    %2d. (%5.1f%%, %5.1f%%) x%-4g %s\n",
						j, h.X, h.Y, h.TargetZoom(g.cfg.DefaultHotspotZoom), h.Title)
					if showDescriptions && h.Description != "" {
						fmt.Fprintf(out, "        %s\n", h.Description)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDescriptions, "descriptions", false, "Include artwork and hotspot descriptions")

	return cmd
}
