// Package encoder maps target format tokens to image encoders.
package encoder

import (
	"context"
	"image"
	"io"
)

// Encoder writes an image in one target format.
type Encoder interface {
	// Format returns the format token shown to the user (e.g. "jpg", "webp").
	Format() string

	// Extension returns the output file extension without dot.
	Extension() string

	// SupportsAlpha reports whether the format can store transparency.
	SupportsAlpha() bool

	// Available returns true if the encoder is ready to use.
	Available() bool

	// Encode writes img to w.
	Encode(ctx context.Context, w io.Writer, img image.Image) error
}
