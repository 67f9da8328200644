package observer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

var testGeometry = interact.Geometry{ViewportW: 800, ViewportH: 600, ImageW: 800, ImageH: 600}

func newSession() *state.Session {
	cam := interact.NewCamera(interact.DefaultEngine(), interact.DefaultFocusDuration)
	return state.NewSession(core.SampleCatalog(), cam)
}

func TestRecorder(t *testing.T) {
	s := newSession()
	rec := NewRecorder()
	Attach(s, rec)

	s.Start()
	if len(rec.Artworks) != 1 || rec.Artworks[0] != 0 {
		t.Fatalf("Artworks = %v, want [0]", rec.Artworks)
	}
	if last, ok := rec.Last(); !ok || last != interact.Identity() {
		t.Errorf("Expected identity after load, got %v", last)
	}

	ev := s.OpenHotspot(1, testGeometry)
	if len(rec.Hotspots) != 1 || rec.Hotspots[0] != ev {
		t.Fatalf("Hotspots = %v, want [%v]", rec.Hotspots, ev)
	}

	// Run the focus animation to completion
	s.Camera.Tick(time.Now().Add(time.Second))

	artwork, _ := s.Current()
	want := s.Camera.Engine().FocusOn(artwork.Hotspots[1], testGeometry.ImageW, testGeometry.ImageH)
	if last, _ := rec.Last(); last != want {
		t.Errorf("Last transform = %v, want %v", last, want)
	}

	rec.Reset()
	if _, ok := rec.Last(); ok || len(rec.Hotspots) != 0 {
		t.Error("Expected empty recorder after Reset")
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := newSession()
	Attach(s, NewLogObserver(log))
	s.Start()
	s.OpenHotspot(0, testGeometry)

	out := buf.String()
	for _, want := range []string{"Artwork shown", "Transform changed", "Hotspot detail shown"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log output missing %q:\n%s", want, out)
		}
	}
}
