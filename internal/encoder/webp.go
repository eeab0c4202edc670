package encoder

import (
	"context"
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// WebPEncoder writes lossless WebP (VP8L) in pure Go, keeping the alpha channel.
type WebPEncoder struct{}

func (e *WebPEncoder) Format() string      { return "webp" }
func (e *WebPEncoder) Extension() string   { return "webp" }
func (e *WebPEncoder) SupportsAlpha() bool { return true }
func (e *WebPEncoder) Available() bool     { return true }

func (e *WebPEncoder) Encode(_ context.Context, w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}
