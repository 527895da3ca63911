package rasterizer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"

	"github.com/mglk/planar"
	"golang.org/x/image/vector"
)

// Options control how a plane is drawn.
type Options struct {
	Scale      float64 // pixels per coordinate unit
	LineWidth  float64 // stroke width in pixels
	Markers    bool    // draw squares on intersection points
	MarkerSize float64 // marker edge in pixels
	Background color.RGBA
}

// DefaultOptions returns the options of the classic view: black background,
// 1.5px strokes, 5px markers.
func DefaultOptions() *Options {
	return &Options{
		Scale:      1.0,
		LineWidth:  1.5,
		MarkerSize: 5.0,
		Background: color.RGBA{0, 0, 0, 255},
	}
}

var markerColor = color.RGBA{255, 0, 0, 255}

// GroupColor returns the color of a component, stable across runs. Unlabeled
// segments are white.
func GroupColor(group int) color.RGBA {
	if group < 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	rnd := rand.New(rand.NewSource(int64(group) + 12345))
	return color.RGBA{
		uint8(64 + rnd.Intn(192)),
		uint8(64 + rnd.Intn(192)),
		uint8(64 + rnd.Intn(192)),
		255,
	}
}

// Draw renders the plane on a new image. Segments are colored by component
// and the intersections of the last solve can be marked.
func Draw(pl *planar.Plane, opts *Options) *image.RGBA {
	if opts == nil {
		opts = DefaultOptions()
	}
	size := int((pl.Max()-pl.Min())*opts.Scale + 0.5)
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	at := func(p planar.Point) (float64, float64) {
		return (p.X - pl.Min()) * opts.Scale, (p.Y - pl.Min()) * opts.Scale
	}

	pl.ForEachSegment(func(s *planar.Segment) {
		x0, y0 := at(s.Start())
		x1, y1 := at(s.End())
		strokeLine(img, x0, y0, x1, y1, opts.LineWidth, GroupColor(s.Group()))
	})

	if opts.Markers {
		pl.ForEachIntersection(func(z planar.Intersection) {
			x, y := at(z.Point)
			h := opts.MarkerSize / 2.0
			r := image.Rect(int(x-h), int(y-h), int(x+h)+1, int(y+h)+1).Intersect(img.Bounds())
			draw.Draw(img, r, image.NewUniform(markerColor), image.Point{}, draw.Src)
		})
	}
	return img
}

// strokeLine fills the quad spanned by the line and its width. The rasterizer
// covers only the clamped bounding box of the stroke.
func strokeLine(img *image.RGBA, x0, y0, x1, y1, width float64, c color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0.0 {
		return
	}
	hx := -(y1 - y0) / length * width / 2.0
	hy := (x1 - x0) / length * width / 2.0

	size := img.Bounds().Size()
	x := int(math.Min(x0, x1) - width)
	y := int(math.Min(y0, y1) - width)
	w := int(math.Abs(x1-x0)+2.0*width) + 1
	h := int(math.Abs(y1-y0)+2.0*width) + 1
	if x+w <= 0 || size.X <= x || y+h <= 0 || size.Y <= y {
		return // outside canvas
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if size.X <= x+w {
		w = size.X - x
	}
	if size.Y <= y+h {
		h = size.Y - y
	}
	if w <= 0 || h <= 0 {
		return // has no size
	}

	fx, fy := float64(x), float64(y)
	ras := vector.NewRasterizer(w, h)
	ras.MoveTo(float32(x0+hx-fx), float32(y0+hy-fy))
	ras.LineTo(float32(x1+hx-fx), float32(y1+hy-fy))
	ras.LineTo(float32(x1-hx-fx), float32(y1-hy-fy))
	ras.LineTo(float32(x0-hx-fx), float32(y0-hy-fy))
	ras.ClosePath()
	ras.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{})
}
