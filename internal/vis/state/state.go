// Package state manages the viewing session: the artwork on display, the
// hotspots the user has opened, and the detail panel.
package state

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Tobotis/interactive-art-gallery/internal/core"
	"github.com/Tobotis/interactive-art-gallery/internal/logging"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
)

// HotspotEvent carries what the detail panel shows for an opened hotspot.
type HotspotEvent struct {
	Index       int
	Title       string
	Description string
	DetailImage string // Empty when the hotspot has no detail image
}

// Listener is notified of session changes.
type Listener interface {
	// ArtworkLoaded is called after the view has been reset for a new artwork.
	ArtworkLoaded(index int, artwork *core.Artwork)

	// HotspotOpened is called when a hotspot's detail is opened.
	HotspotOpened(ev HotspotEvent)
}

// ListenerFuncs adapts optional callbacks to the Listener interface.
type ListenerFuncs struct {
	OnArtworkLoaded func(index int, artwork *core.Artwork)
	OnHotspotOpened func(ev HotspotEvent)
}

func (l ListenerFuncs) ArtworkLoaded(index int, artwork *core.Artwork) {
	if l.OnArtworkLoaded != nil {
		l.OnArtworkLoaded(index, artwork)
	}
}

func (l ListenerFuncs) HotspotOpened(ev HotspotEvent) {
	if l.OnHotspotOpened != nil {
		l.OnHotspotOpened(ev)
	}
}

// Session holds all state of one viewing session.
type Session struct {
	ID      string
	Catalog *core.Catalog
	Camera  *interact.Camera

	current   int // -1 before the first artwork is loaded
	viewed    ViewedSet
	detail    *HotspotEvent
	listeners []Listener
}

// NewSession creates a session over cat. Call Start to load the first artwork.
func NewSession(cat *core.Catalog, cam *interact.Camera) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Catalog: cat,
		Camera:  cam,
		current: -1,
		viewed:  NewViewedSet(),
	}
}

// AddListener registers l for session notifications.
func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Start loads the first artwork, if the catalog has any.
func (s *Session) Start() {
	logging.Logger().Info("Viewing session started", "session", s.ID, "artworks", s.Catalog.Len())
	if s.Catalog.Len() > 0 {
		s.SelectArtwork(0)
	}
}

// SelectArtwork loads artwork i: the view resets to identity, the viewed set
// is cleared and the detail panel closes. It panics if i is out of range.
func (s *Session) SelectArtwork(i int) {
	artwork := s.Catalog.At(i)

	s.current = i
	s.viewed.Clear()
	s.detail = nil
	s.Camera.Reset()

	logging.Logger().Info("Artwork loaded",
		"session", s.ID, "index", i, "title", artwork.Title, "hotspots", len(artwork.Hotspots))

	for _, l := range s.listeners {
		l.ArtworkLoaded(i, artwork)
	}
}

// Next loads the following artwork, wrapping around.
func (s *Session) Next() {
	if n := s.Catalog.Len(); n > 0 {
		s.SelectArtwork((s.current + 1) % n)
	}
}

// Prev loads the preceding artwork, wrapping around.
func (s *Session) Prev() {
	if n := s.Catalog.Len(); n > 0 {
		s.SelectArtwork((s.current - 1 + n) % n)
	}
}

// Current returns the loaded artwork and its index, or nil and -1.
func (s *Session) Current() (*core.Artwork, int) {
	if s.current < 0 {
		return nil, -1
	}
	return s.Catalog.At(s.current), s.current
}

// OpenHotspot marks hotspot i viewed, starts the focus animation and opens the
// detail panel. It panics when no artwork is loaded or i is out of range.
func (s *Session) OpenHotspot(i int, g interact.Geometry) HotspotEvent {
	artwork, idx := s.Current()
	if artwork == nil {
		panic("state: OpenHotspot called before an artwork was loaded")
	}
	h, ok := artwork.Hotspot(i)
	if !ok {
		panic(fmt.Sprintf("state: hotspot index %d out of range for artwork %d (%d hotspots)",
			i, idx, len(artwork.Hotspots)))
	}

	s.viewed.Add(i)
	target := s.Camera.Focus(h, g)

	ev := HotspotEvent{
		Index:       i,
		Title:       h.Title,
		Description: h.Description,
		DetailImage: h.DetailImage,
	}
	s.detail = &ev

	logging.Logger().Info("Hotspot opened",
		"session", s.ID, "artwork", idx, "hotspot", i, "title", h.Title)
	logging.Logger().Debug("Focus target",
		"scale", target.Scale, "tx", target.TranslateX, "ty", target.TranslateY)

	for _, l := range s.listeners {
		l.HotspotOpened(ev)
	}
	return ev
}

// IsHotspotViewed reports whether hotspot i of the current artwork was opened.
func (s *Session) IsHotspotViewed(i int) bool {
	return s.viewed.Has(i)
}

// ViewedCount returns how many hotspots of the current artwork were opened.
func (s *Session) ViewedCount() int {
	return s.viewed.Len()
}

// Detail returns the open detail panel content.
func (s *Session) Detail() (HotspotEvent, bool) {
	if s.detail == nil {
		return HotspotEvent{}, false
	}
	return *s.detail, true
}

// DetailOpen reports whether the detail panel is showing.
func (s *Session) DetailOpen() bool {
	return s.detail != nil
}

// CloseDetail hides the detail panel. The view stays where it is.
func (s *Session) CloseDetail() {
	s.detail = nil
}

// ResetView returns to the identity view without changing the artwork.
func (s *Session) ResetView() {
	s.Camera.Reset()
}
