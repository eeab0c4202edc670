package convert

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"image-converter/internal/encoder"
	"image-converter/internal/model"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Background is the color transparent pixels are composited onto when the
// target format cannot store alpha.
var Background color.Color = color.White

// Registry resolves a format token to its encoder.
type Registry interface {
	Get(format string) (encoder.Encoder, error)
}

// Converter saves converted copies of images next to their source.
type Converter struct {
	registry Registry
}

// New creates a converter backed by registry.
func New(registry Registry) *Converter {
	return &Converter{registry: registry}
}

// Convert decodes req.SourcePath and writes it as req.Format, returning the output path.
func (c *Converter) Convert(ctx context.Context, req model.Request) (string, error) {
	if strings.TrimSpace(req.SourcePath) == "" || strings.TrimSpace(req.Format) == "" {
		return "", errors.New("missing image path or format")
	}

	enc, err := c.registry.Get(req.Format)
	if err != nil {
		return "", err
	}

	img, err := imaging.Open(req.SourcePath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	if !enc.SupportsAlpha() && HasAlpha(img) {
		img = Flatten(img, Background)
	}

	outPath := OutputPath(req.SourcePath, enc.Extension())
	if err := writeAtomic(ctx, outPath, enc, img); err != nil {
		return "", err
	}
	return outPath, nil
}

// OutputPath replaces the extension of src with ext. Leading dots of the
// file name are not an extension, so ".hidden" becomes ".hidden.<ext>".
func OutputPath(src, ext string) string {
	name := strings.TrimLeft(filepath.Base(src), ".")
	base := strings.TrimSuffix(src, filepath.Ext(name))
	return base + "." + ext
}

// HasAlpha reports whether img carries an alpha channel or a palette.
func HasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	default:
		return true
	}
}

// Flatten composites img onto an opaque bg and returns the result.
func Flatten(img image.Image, bg color.Color) image.Image {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

func writeAtomic(ctx context.Context, path string, enc encoder.Encoder, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := enc.Encode(ctx, tmp, img); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("encode %s: %w", enc.Format(), err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close output file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set output permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
