package interact

import (
	"testing"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
)

func TestScreenPosition(t *testing.T) {
	g := Geometry{ViewportW: 800, ViewportH: 600, ImageW: 400, ImageH: 300}
	tests := []struct {
		name   string
		t      Transform
		x, y   float64
		wx, wy float64
	}{
		{"centre at identity", Identity(), 50, 50, 400, 300},
		{"top-left at identity", Identity(), 0, 0, 200, 150},
		{"bottom-right zoomed", Transform{Scale: 2}, 100, 100, 800, 600},
		{"translated", Transform{Scale: 1, TranslateX: 30, TranslateY: -20}, 50, 50, 430, 280},
		{"outside image passes through", Identity(), 150, -50, 800, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ScreenPosition(tt.t, g, tt.x, tt.y)
			if !near(x, tt.wx) || !near(y, tt.wy) {
				t.Errorf("ScreenPosition = (%v,%v), want (%v,%v)", x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestPercentAt_InvertsScreenPosition(t *testing.T) {
	g := Geometry{ViewportW: 1000, ViewportH: 700, ImageW: 640, ImageH: 480}
	s := Transform{Scale: 2.25, TranslateX: -140, TranslateY: 65}
	h := core.Hotspot{X: 37.5, Y: 81}

	sx, sy := ScreenPositionOf(s, g, h)
	x, y, ok := PercentAt(s, g, sx, sy)
	if !ok {
		t.Fatal("PercentAt reported not ok")
	}
	if !near(x, h.X) || !near(y, h.Y) {
		t.Errorf("PercentAt = (%v,%v), want (%v,%v)", x, y, h.X, h.Y)
	}
}

func TestPercentAt_Degenerate(t *testing.T) {
	if _, _, ok := PercentAt(Identity(), Geometry{ViewportW: 10, ViewportH: 10}, 1, 1); ok {
		t.Error("Expected not ok for zero-sized image")
	}
	g := Geometry{ViewportW: 10, ViewportH: 10, ImageW: 10, ImageH: 10}
	if _, _, ok := PercentAt(Transform{}, g, 1, 1); ok {
		t.Error("Expected not ok for zero scale")
	}
}

func TestFitGeometry(t *testing.T) {
	tests := []struct {
		name           string
		vw, vh, nw, nh float64
		wantW, wantH   float64
	}{
		{"wide image", 800, 600, 1600, 600, 800, 300},
		{"tall image", 800, 600, 600, 1200, 300, 600},
		{"small image not upscaled", 800, 600, 200, 100, 200, 100},
		{"unknown size", 800, 600, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FitGeometry(tt.vw, tt.vh, tt.nw, tt.nh)
			if !near(g.ImageW, tt.wantW) || !near(g.ImageH, tt.wantH) {
				t.Errorf("FitGeometry = %vx%v, want %vx%v", g.ImageW, g.ImageH, tt.wantW, tt.wantH)
			}
			if g.ViewportW != tt.vw || g.ViewportH != tt.vh {
				t.Errorf("Viewport size not preserved: %+v", g)
			}
		})
	}
}
