package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"BezierBoard/internal/disk"
	"BezierBoard/internal/render"
)

// PNG writes a raster snapshot of the overlay: the background stretched to sz
// with layers stroked over it.
func PNG(w io.Writer, background image.Image, sz render.Size, layers ...render.Layer) error {
	img := render.Rasterize(sz, background, layers...)
	return png.Encode(w, img)
}

// WritePNGFile writes the snapshot to path.
func WritePNGFile(path string, background image.Image, sz render.Size, layers ...render.Layer) error {
	err := disk.WriteFileAtomic(path, func(w io.Writer) error {
		return PNG(w, background, sz, layers...)
	})
	if err != nil {
		return fmt.Errorf("export png %s: %w", path, err)
	}
	return nil
}
