package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Tobotis/interactive-art-gallery/internal/config"
	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/logging"
)

// globals holds settings shared by all subcommands, filled in before they run.
type globals struct {
	cfg      *config.Config
	catalog  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "artviewer",
		Short: "Explore artworks and the hidden details inside them",
		Long: `Artviewer opens a gallery of artworks that can be zoomed and panned.

Each artwork carries hotspots: points of interest that, when opened, glide
the view onto the detail and explain what it shows.

Settings come from ARTVIEWER_* environment variables; a .env file in the
working directory is loaded first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if g.catalog != "" {
				cfg.Catalog = g.catalog
			}
			if g.logLevel != "" {
				cfg.LogLevel = g.logLevel
			}
			g.cfg = cfg

			l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logging.ParseLevel(cfg.LogLevel),
			}))
			logging.SetLogger(l)
			slog.SetDefault(l)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&g.catalog, "catalog", "", "Path to a YAML or JSON catalog (default: built-in sample gallery)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	// Add subcommands
	cmd.AddCommand(newViewCmd(g))
	cmd.AddCommand(newInspectCmd(g))
	cmd.AddCommand(newFocusCmd(g))
	cmd.AddCommand(newProbeCmd(g))

	return cmd
}

// loadCatalog returns the configured catalog, or the sample gallery.
func (g *globals) loadCatalog() (*core.Catalog, error) {
	if g.cfg.Catalog == "" {
		return core.SampleCatalog(), nil
	}
	cat, err := core.LoadCatalog(g.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	slog.Debug("Catalog loaded", "path", g.cfg.Catalog, "artworks", cat.Len())
	return cat, nil
}

// parseSize parses a WxH pair such as "800x600".
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WxH", s)
	}
	if w, err = strconv.ParseFloat(strings.TrimSpace(ws), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	if h, err = strconv.ParseFloat(strings.TrimSpace(hs), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// parseIndex parses a positional index argument and checks it against n.
func parseIndex(what, s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q: %w", what, s, err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%s index %d out of range [0, %d)", what, i, n)
	}
	return i, nil
}
