package rasterizer

import (
	"image/png"
	"io"
	"os"

	"github.com/mglk/planar"
)

// WritePNG draws the plane and encodes it as a PNG.
func WritePNG(w io.Writer, pl *planar.Plane, opts *Options) error {
	return png.Encode(w, Draw(pl, opts))
}

// SavePNG draws the plane into a PNG file at path.
func SavePNG(path string, pl *planar.Plane, opts *Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, pl, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
