package encoder

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// inputExtensions lists the source extensions offered by the file picker.
var inputExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff", ".tif", ".webp"}

// Registry holds the fixed, ordered set of target formats.
type Registry struct {
	order    []string
	encoders map[string]Encoder
}

// NewRegistry creates a registry with every supported target format.
func NewRegistry() *Registry {
	return newRegistry(
		&ImagingEncoder{token: "png", format: imaging.PNG, alpha: true},
		&ImagingEncoder{token: "jpg", format: imaging.JPEG},
		&ImagingEncoder{token: "jpeg", format: imaging.JPEG},
		&WebPEncoder{},
		&ImagingEncoder{token: "bmp", format: imaging.BMP},
		&GIFEncoder{},
		&ImagingEncoder{token: "tiff", format: imaging.TIFF, alpha: true},
	)
}

func newRegistry(all ...Encoder) *Registry {
	r := &Registry{encoders: make(map[string]Encoder, len(all))}
	for _, enc := range all {
		r.order = append(r.order, enc.Format())
		r.encoders[enc.Format()] = enc
	}
	return r
}

// Get returns the encoder for a case-insensitive format token.
func (r *Registry) Get(format string) (Encoder, error) {
	token := strings.ToLower(strings.TrimSpace(format))
	enc, ok := r.encoders[token]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return enc, nil
}

// Formats returns the format tokens in display order. The first entry is the default.
func (r *Registry) Formats() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// String returns a summary of registered formats.
func (r *Registry) String() string {
	var b strings.Builder
	b.WriteString("formats: ")
	for i, f := range r.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f)
		if !r.encoders[f].Available() {
			b.WriteString(" (unavailable)")
		}
	}
	return b.String()
}

// InputExtensions returns the source file extensions, with leading dot.
func InputExtensions() []string {
	out := make([]string, len(inputExtensions))
	copy(out, inputExtensions)
	return out
}
