package main

import (
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/Tobotis/interactive-art-gallery/internal/vis"
)

func newViewCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the viewer window",
		Long: `Open the gallery window.

Drag or use one finger to pan, scroll or pinch to zoom, and click a marker
to open its hotspot. Keys: + and - zoom, 0 resets the view, the arrow keys
switch artworks and Escape closes the detail panel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := g.loadCatalog()
			if err != nil {
				return err
			}

			go func() {
				window := new(app.Window)
				window.Option(
					app.Title("Art Detective"),
					app.Size(unit.Dp(float32(g.cfg.WindowWidth)), unit.Dp(float32(g.cfg.WindowHeight))),
				)

				application := vis.NewApp(g.cfg, cat)
				if err := application.Run(window); err != nil {
					slog.Error("Viewer stopped", "error", err)
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
}
