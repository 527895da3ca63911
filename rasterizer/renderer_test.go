package rasterizer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/mglk/planar"
	"github.com/tdewolff/test"
)

func TestGroupColor(t *testing.T) {
	test.T(t, GroupColor(-1), color.RGBA{255, 255, 255, 255})
	test.T(t, GroupColor(0), GroupColor(0))
	test.That(t, GroupColor(0) != GroupColor(1))
	c := GroupColor(3)
	test.That(t, 64 <= c.R && 64 <= c.G && 64 <= c.B)
	test.T(t, c.A, uint8(255))
}

func TestDrawSize(t *testing.T) {
	pl := planar.New()
	pl.SetMin(0)
	pl.SetMax(100)

	img := Draw(pl, nil)
	test.T(t, img.Bounds().Dx(), 100)
	test.T(t, img.Bounds().Dy(), 100)

	opts := DefaultOptions()
	opts.Scale = 2.0
	img = Draw(pl, opts)
	test.T(t, img.Bounds().Dx(), 200)
}

func TestDrawBackground(t *testing.T) {
	pl := planar.New()
	pl.SetMax(10)
	opts := DefaultOptions()
	opts.Background = color.RGBA{1, 2, 3, 255}
	img := Draw(pl, opts)
	test.T(t, img.RGBAAt(5, 5), opts.Background)
}

func TestDrawSegment(t *testing.T) {
	pl := planar.New()
	pl.SetMax(20)
	pl.AddSegment(2, 10, 18, 10)
	img := Draw(pl, nil)

	// the unlabeled segment is drawn white over the black background
	c := img.RGBAAt(10, 10)
	test.That(t, 128 < c.R && 128 < c.G && 128 < c.B)
	test.T(t, img.RGBAAt(10, 2), color.RGBA{0, 0, 0, 255})
}

func TestDrawMarkers(t *testing.T) {
	pl := planar.New()
	pl.SetMax(20)
	pl.AddSegment(0, 0, 20, 20)
	pl.AddSegment(0, 20, 20, 0)
	test.Error(t, pl.Solve())

	opts := DefaultOptions()
	opts.Markers = true
	img := Draw(pl, opts)
	test.T(t, img.RGBAAt(10, 10), color.RGBA{255, 0, 0, 255})
}

func TestWritePNG(t *testing.T) {
	pl := planar.New()
	pl.SetMax(10)
	pl.AddSegment(0, 0, 10, 10)

	buf := &bytes.Buffer{}
	test.Error(t, WritePNG(buf, pl, nil))
	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 10)
}
