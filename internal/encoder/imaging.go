package encoder

import (
	"context"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// ImagingEncoder encodes through disintegration/imaging with library defaults.
type ImagingEncoder struct {
	token  string
	format imaging.Format
	alpha  bool
}

func (e *ImagingEncoder) Format() string      { return e.token }
func (e *ImagingEncoder) Extension() string   { return e.token }
func (e *ImagingEncoder) SupportsAlpha() bool { return e.alpha }
func (e *ImagingEncoder) Available() bool     { return true }

func (e *ImagingEncoder) Encode(_ context.Context, w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, e.format)
}
