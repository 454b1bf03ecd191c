package clouds

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// RenderImage renders a single frame of v at the given elapsed seconds on the
// CPU.
func RenderImage(v Variant, width, height int, speed, elapsed float64) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	surface := NewSoftSurface()

	r := NewRenderer()
	defer r.Unmount()

	if err := r.Mount(surface, width, height, v, speed); err != nil {
		return nil, err
	}
	if err := r.RenderOnce(elapsed); err != nil {
		return nil, err
	}

	return surface.Image(), nil
}

// ExportPNG writes a single CPU rendered frame as PNG.
func ExportPNG(w io.Writer, v Variant, width, height int, speed, elapsed float64) error {
	img, err := RenderImage(v, width, height, speed, elapsed)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
