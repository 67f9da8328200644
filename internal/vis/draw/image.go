// Package draw provides rendering functions for the viewer.
package draw

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	_ "golang.org/x/image/webp"

	"github.com/Tobotis/interactive-art-gallery/internal/logging"
	"github.com/Tobotis/interactive-art-gallery/internal/vis/interact"
)

// Placeholder size for images that fail to load.
const (
	PlaceholderWidth  = 800
	PlaceholderHeight = 600
)

var (
	colorPlaceholderA = color.NRGBA{R: 58, G: 62, B: 70, A: 255}
	colorPlaceholderB = color.NRGBA{R: 48, G: 52, B: 60, A: 255}
)

// Picture is a decoded image ready for painting.
type Picture struct {
	Op          paint.ImageOp
	Size        image.Point // Natural size in pixels
	Placeholder bool
}

// LoadImage decodes a PNG, JPEG, GIF or WebP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Placeholder returns a checkerboard standing in for a missing image.
func Placeholder(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	const cell = 40
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colorPlaceholderA
			if (x/cell+y/cell)%2 == 1 {
				c = colorPlaceholderB
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Images loads pictures on first use and keeps them for the process lifetime.
type Images struct {
	resolve func(ref string) string
	cache   map[string]*Picture
}

// NewImages creates a cache. resolve maps catalog references to file paths.
func NewImages(resolve func(ref string) string) *Images {
	if resolve == nil {
		resolve = func(ref string) string { return ref }
	}
	return &Images{
		resolve: resolve,
		cache:   make(map[string]*Picture),
	}
}

// Get returns the picture for ref, substituting a placeholder on failure.
func (c *Images) Get(ref string) *Picture {
	if pic, ok := c.cache[ref]; ok {
		return pic
	}

	var pic *Picture
	img, err := LoadImage(c.resolve(ref))
	if err != nil {
		logging.Logger().Warn("Using placeholder image", "ref", ref, "error", err)
		img = Placeholder(PlaceholderWidth, PlaceholderHeight)
		pic = &Picture{Placeholder: true}
	} else {
		logging.Logger().Debug("Image loaded", "ref", ref, "size", img.Bounds().Size())
		pic = &Picture{}
	}

	pic.Op = paint.NewImageOp(img)
	pic.Size = img.Bounds().Size()
	c.cache[ref] = pic
	return pic
}

// ImageAffine maps natural image pixels to viewport pixels under t.
func ImageAffine(size image.Point, t interact.Transform, g interact.Geometry) f32.Affine2D {
	if size.X <= 0 || !g.HasImage() {
		return f32.Affine2D{}
	}

	k := t.Scale * g.ImageW / float64(size.X)
	cx, cy := g.Center()
	ox := cx + t.TranslateX - t.Scale*g.ImageW/2
	oy := cy + t.TranslateY - t.Scale*g.ImageH/2

	return f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(float32(k), float32(k))).
		Offset(f32.Pt(float32(ox), float32(oy)))
}

// DrawArtwork paints pic centred in the viewport under transform t.
func DrawArtwork(gtx layout.Context, pic *Picture, t interact.Transform, g interact.Geometry) {
	if pic == nil || !g.HasImage() {
		return
	}

	defer op.Affine(ImageAffine(pic.Size, t, g)).Push(gtx.Ops).Pop()
	defer clip.Rect(image.Rectangle{Max: pic.Size}).Push(gtx.Ops).Pop()

	pic.Op.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
