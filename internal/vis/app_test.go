package vis

import (
	"testing"

	"gioui.org/io/key"

	"github.com/Tobotis/interactive-art-gallery/internal/config"
	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return NewApp(cfg, core.SampleCatalog())
}

func TestApp_StartsOnFirstArtwork(t *testing.T) {
	a := newTestApp(t)
	if _, idx := a.Session().Current(); idx != 0 {
		t.Errorf("Current index = %d, want 0", idx)
	}
}

func TestApp_KeyboardShortcuts(t *testing.T) {
	a := newTestApp(t)
	s := a.Session()
	g := interact.Geometry{ViewportW: 800, ViewportH: 600, ImageW: 800, ImageH: 600}

	a.handleKeyEvent(key.Event{Name: key.NameRightArrow})
	if _, idx := s.Current(); idx != 1 {
		t.Errorf("After right arrow index = %d, want 1", idx)
	}
	a.handleKeyEvent(key.Event{Name: key.NameLeftArrow})
	a.handleKeyEvent(key.Event{Name: key.NameLeftArrow})
	if _, idx := s.Current(); idx != s.Catalog.Len()-1 {
		t.Errorf("Left arrow should wrap, got index %d", idx)
	}

	a.handleKeyEvent(key.Event{Name: "+"})
	if got := s.Camera.Transform().Scale; got != 1.3 {
		t.Errorf("Scale after + = %v, want 1.3", got)
	}
	a.handleKeyEvent(key.Event{Name: "0"})
	if got := s.Camera.Transform(); got != interact.Identity() {
		t.Errorf("Transform after 0 = %v, want identity", got)
	}

	s.OpenHotspot(0, g)
	a.handleKeyEvent(key.Event{Name: key.NameEscape})
	if s.DetailOpen() {
		t.Error("Escape should close the detail panel")
	}
}
