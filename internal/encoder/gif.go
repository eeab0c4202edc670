package encoder

import (
	"context"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"
)

// gifPalette reserves index 0 for full transparency ahead of the Plan9 colors.
var gifPalette = append(color.Palette{color.Transparent}, palette.Plan9[:255]...)

// GIFEncoder quantizes onto a palette with a transparent entry so
// transparent source pixels stay transparent.
type GIFEncoder struct{}

func (e *GIFEncoder) Format() string      { return "gif" }
func (e *GIFEncoder) Extension() string   { return "gif" }
func (e *GIFEncoder) SupportsAlpha() bool { return true }
func (e *GIFEncoder) Available() bool     { return true }

func (e *GIFEncoder) Encode(_ context.Context, w io.Writer, img image.Image) error {
	if p, ok := img.(*image.Paletted); ok && len(p.Palette) <= 256 {
		return gif.Encode(w, p, nil)
	}

	b := img.Bounds()
	dst := image.NewPaletted(b, gifPalette)
	draw.FloydSteinberg.Draw(dst, b, img, b.Min)
	return gif.Encode(w, dst, nil)
}
