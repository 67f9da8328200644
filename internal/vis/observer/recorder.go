package observer

import (
	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/state"
)

// Recorder keeps every notification it receives, in order.
type Recorder struct {
	Transforms []interact.Transform
	Artworks   []int
	Hotspots   []state.HotspotEvent
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) TransformChanged(t interact.Transform) {
	r.Transforms = append(r.Transforms, t)
}

func (r *Recorder) ArtworkLoaded(index int, _ *core.Artwork) {
	r.Artworks = append(r.Artworks, index)
}

func (r *Recorder) HotspotOpened(ev state.HotspotEvent) {
	r.Hotspots = append(r.Hotspots, ev)
}

// Last returns the most recent transform, if any.
func (r *Recorder) Last() (interact.Transform, bool) {
	if len(r.Transforms) == 0 {
		return interact.Transform{}, false
	}
	return r.Transforms[len(r.Transforms)-1], true
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Transforms = r.Transforms[:0]
	r.Artworks = r.Artworks[:0]
	r.Hotspots = r.Hotspots[:0]
}
