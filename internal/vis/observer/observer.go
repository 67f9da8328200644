// Package observer provides observers for viewing-session notifications.
package observer

import (
	"log/slog"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

// Observer receives both transform and session notifications.
type Observer interface {
	interact.Listener
	state.Listener
}

// Attach registers o on the session and its camera.
func Attach(s *state.Session, o Observer) {
	s.Camera.AddListener(o)
	s.AddListener(o)
}

// LogObserver writes notifications to a structured logger. Transform
// changes are logged at debug level since animations emit one per frame.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver creates an observer logging to l.
func NewLogObserver(l *slog.Logger) *LogObserver {
	return &LogObserver{log: l}
}

// TransformChanged is called for every transform update.
func (o *LogObserver) TransformChanged(t interact.Transform) {
	o.log.Debug("Transform changed", "scale", t.Scale, "tx", t.TranslateX, "ty", t.TranslateY)
}

// ArtworkLoaded is called when an artwork is selected.
func (o *LogObserver) ArtworkLoaded(index int, artwork *core.Artwork) {
	o.log.Debug("Artwork shown", "index", index, "image", artwork.Image)
}

// HotspotOpened is called when a hotspot detail opens.
func (o *LogObserver) HotspotOpened(ev state.HotspotEvent) {
	o.log.Debug("Hotspot detail shown", "index", ev.Index, "detail_image", ev.DetailImage)
}
