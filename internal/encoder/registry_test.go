package encoder

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"strings"
	"testing"

	"golang.org/x/image/webp"
)

func TestRegistryFormatsOrder(t *testing.T) {
	got := NewRegistry().Formats()
	want := []string{"png", "jpg", "jpeg", "webp", "bmp", "gif", "tiff"}
	if len(got) != len(want) {
		t.Fatalf("unexpected formats: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected formats: got=%v want=%v", got, want)
		}
	}
}

func TestRegistryFormatsReturnsCopy(t *testing.T) {
	r := NewRegistry()
	formats := r.Formats()
	formats[0] = "mutated"
	if r.Formats()[0] != "png" {
		t.Fatalf("Formats should not expose internal slice")
	}
}

func TestRegistryGetCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	enc, err := r.Get("  JPG ")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if enc.Format() != "jpg" || enc.Extension() != "jpg" {
		t.Fatalf("unexpected encoder: %s/%s", enc.Format(), enc.Extension())
	}
}

func TestRegistryGetUnsupported(t *testing.T) {
	_, err := NewRegistry().Get("xcf")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestRegistryAlphaSupport(t *testing.T) {
	r := NewRegistry()
	cases := map[string]bool{
		"png":  true,
		"jpg":  false,
		"jpeg": false,
		"webp": true,
		"bmp":  false,
		"gif":  true,
		"tiff": true,
	}
	for format, want := range cases {
		enc, err := r.Get(format)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", format, err)
		}
		if enc.SupportsAlpha() != want {
			t.Fatalf("SupportsAlpha(%q) = %v, want %v", format, enc.SupportsAlpha(), want)
		}
	}
}

func TestImagingEncoderJPEG(t *testing.T) {
	enc, err := NewRegistry().Get("jpeg")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	var buf bytes.Buffer
	if err := enc.Encode(context.Background(), &buf, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := jpeg.Decode(&buf); err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
}

func TestWebPEncoderKeepsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	if err := (&WebPEncoder{}).Encode(context.Background(), &buf, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := webp.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a WebP: %v", err)
	}
	if r, g, b, a := decoded.At(0, 0).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a != 0xffff {
		t.Fatalf("opaque pixel changed: %d,%d,%d,%d", r>>8, g>>8, b>>8, a)
	}
	if _, _, _, a := decoded.At(1, 0).RGBA(); a != 0 {
		t.Fatalf("transparent pixel should stay transparent, alpha=%d", a)
	}
}

func TestGIFEncoderKeepsTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := (&GIFEncoder{}).Encode(context.Background(), &buf, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := gif.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a GIF: %v", err)
	}
	if _, _, _, a := decoded.At(3, 3).RGBA(); a != 0 {
		t.Fatalf("transparent pixel came out opaque, alpha=%d", a)
	}
	if r, _, _, a := decoded.At(0, 0).RGBA(); a != 0xffff || r>>8 < 200 {
		t.Fatalf("opaque red pixel lost, r=%d a=%d", r>>8, a)
	}
}

func TestGIFEncoderPassesPalettedThrough(t *testing.T) {
	pal := color.Palette{color.Transparent, color.NRGBA{G: 255, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	img.SetColorIndex(1, 1, 1)

	var buf bytes.Buffer
	if err := (&GIFEncoder{}).Encode(context.Background(), &buf, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := gif.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a GIF: %v", err)
	}
	if _, g, _, a := decoded.At(1, 1).RGBA(); g>>8 != 255 || a != 0xffff {
		t.Fatalf("palette color changed: g=%d a=%d", g>>8, a)
	}
	if _, _, _, a := decoded.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("transparent index lost, alpha=%d", a)
	}
}

func TestInputExtensions(t *testing.T) {
	exts := InputExtensions()
	seen := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			t.Fatalf("extension %q should start with a dot", ext)
		}
		seen[ext] = true
	}
	for _, want := range []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff", ".webp"} {
		if !seen[want] {
			t.Fatalf("missing input extension %q in %v", want, exts)
		}
	}
}
