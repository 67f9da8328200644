package core

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleCatalog []byte

// Catalog is the ordered artwork sequence shown in the gallery.
type Catalog struct {
	Artworks []Artwork `yaml:"artworks"`

	// Directory that relative image references resolve against.
	baseDir string
}

// ParseCatalog decodes a YAML (or JSON) catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// LoadCatalog reads a catalog file. Relative image references are resolved
// against the file's directory.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.baseDir = filepath.Dir(path)
	return c, nil
}

// SampleCatalog returns the built-in demonstration gallery.
func SampleCatalog() *Catalog {
	c, err := ParseCatalog(sampleCatalog)
	if err != nil {
		panic(fmt.Sprintf("core: embedded sample catalog: %v", err))
	}
	return c
}

// Len returns the number of artworks.
func (c *Catalog) Len() int {
	return len(c.Artworks)
}

// At returns the artwork at index i. It panics when i is out of range.
func (c *Catalog) At(i int) *Artwork {
	if i < 0 || i >= len(c.Artworks) {
		panic(fmt.Sprintf("core: artwork index %d out of range [0,%d)", i, len(c.Artworks)))
	}
	return &c.Artworks[i]
}

// Resolve turns an image reference into a path usable by the loader.
func (c *Catalog) Resolve(ref string) string {
	if ref == "" || filepath.IsAbs(ref) || c.baseDir == "" {
		return ref
	}
	return filepath.Join(c.baseDir, ref)
}

// HotspotCount returns the total number of hotspots across all artworks.
func (c *Catalog) HotspotCount() int {
	n := 0
	for i := range c.Artworks {
		n += len(c.Artworks[i].Hotspots)
	}
	return n
}
