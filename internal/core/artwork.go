// Package core defines the gallery domain model: artworks, hotspots and the
// catalog that lists them.
package core

// DefaultHotspotZoom is the focus scale used when a hotspot does not set one.
const DefaultHotspotZoom = 4.0

// Hotspot is a point of interest on an artwork.
type Hotspot struct {
	X           float64 `yaml:"x"` // Percent of image width from the left edge
	Y           float64 `yaml:"y"` // Percent of image height from the top edge
	Zoom        float64 `yaml:"zoom,omitempty"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	DetailImage string  `yaml:"detailImage,omitempty"`
}

// TargetZoom returns the hotspot's focus scale, or def when unset.
func (h Hotspot) TargetZoom(def float64) float64 {
	if h.Zoom > 0 {
		return h.Zoom
	}
	return def
}

// Artwork is one gallery entry with its ordered hotspots.
type Artwork struct {
	ID          int       `yaml:"id"`
	Title       string    `yaml:"title"`
	Artist      string    `yaml:"artist,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Image       string    `yaml:"image"`
	Thumbnail   string    `yaml:"thumbnail,omitempty"`
	Hotspots    []Hotspot `yaml:"hotspots,omitempty"`
}

// Byline returns "by <artist>", or an empty string for unknown artists.
func (a *Artwork) Byline() string {
	if a.Artist == "" {
		return ""
	}
	return "by " + a.Artist
}

// ThumbnailRef returns the thumbnail reference, falling back to the main image.
func (a *Artwork) ThumbnailRef() string {
	if a.Thumbnail != "" {
		return a.Thumbnail
	}
	return a.Image
}

// Hotspot returns the hotspot at index i.
func (a *Artwork) Hotspot(i int) (Hotspot, bool) {
	if i < 0 || i >= len(a.Hotspots) {
		return Hotspot{}, false
	}
	return a.Hotspots[i], true
}
