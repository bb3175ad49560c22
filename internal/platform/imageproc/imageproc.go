// Package imageproc resizes uploaded profile images.
package imageproc

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Resizer crops and scales images to a fixed size.
type Resizer struct {
	quality int
}

// NewResizer returns a Resizer encoding JPEG output at the given quality (1-100).
func NewResizer(quality int) *Resizer {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Resizer{quality: quality}
}

// Fill decodes body, scales it to cover width x height, crops the center and
// re-encodes it in the format named by contentType (image/jpeg or image/png).
func (r *Resizer) Fill(body []byte, contentType string, width, height int) ([]byte, error) {
	format, err := formatFor(contentType)
	if err != nil {
		return nil, err
	}

	src, err := imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	dst := imaging.Fill(src, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, format, imaging.JPEGQuality(r.quality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFor(contentType string) (imaging.Format, error) {
	switch contentType {
	case "image/jpeg":
		return imaging.JPEG, nil
	case "image/png":
		return imaging.PNG, nil
	default:
		return 0, fmt.Errorf("unsupported image type %q", contentType)
	}
}
