// Package vector implements a chart surface on top of github.com/tdewolff/canvas, which can be written as SVG, PDF or raster images.
package vector

import (
	"image/color"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/pivotline"
)

const mmPerPx = 25.4 / 96.0
const ptPerPx = 72.0 / 96.0

var loadFamily = sync.OnceValues(func() (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("latin-modern")
	if err := family.LoadFont(lmroman10regular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	return family, nil
})

// Options are the output options of a container.
type Options struct {
	Minify     bool              // minify SVG output
	Resolution canvas.Resolution // of raster output
}

// DefaultOptions renders raster images at one pixel per container pixel.
var DefaultOptions = Options{
	Resolution: canvas.DPI(96.0),
}

// Container is a fixed size container in pixels.
type Container struct {
	width, height float64
	opts          Options
	surface       *Surface
}

// New returns a container of the given size in pixels.
func New(width, height float64, opts *Options) *Container {
	if opts == nil {
		opts = &DefaultOptions
	}
	return &Container{
		width:  width,
		height: height,
		opts:   *opts,
	}
}

// ClientSize returns the size of the container in pixels.
func (c *Container) ClientSize() (float64, float64) {
	return c.width, c.height
}

// NewSurface returns a surface covering the container.
func (c *Container) NewSurface() pivotline.Surface {
	c.surface = &Surface{
		width:  c.width,
		height: c.height,
	}
	c.surface.Clear()
	return c.surface
}

// Surface draws onto a canvas with the size of its container. Pixel coordinates are converted to millimeters at 96 DPI.
type Surface struct {
	width, height float64
	c             *canvas.Canvas
	ctx           *canvas.Context
	err           error
}

// Canvas returns the canvas drawn so far.
func (s *Surface) Canvas() *canvas.Canvas {
	return s.c
}

// Err returns the first error encountered while drawing text.
func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) Clear() {
	s.c = canvas.New(s.width*mmPerPx, s.height*mmPerPx)
	s.ctx = canvas.NewContext(s.c)
	s.err = nil
}

func (s *Surface) point(p pivotline.Point) (float64, float64) {
	// canvas has its origin at the bottom-left
	return p.X * mmPerPx, (s.height - p.Y) * mmPerPx
}

func (s *Surface) DrawLine(class string, points []pivotline.Point, stroke color.RGBA, width float64) {
	if len(points) == 0 {
		return
	}

	p := &canvas.Path{}
	p.MoveTo(s.point(points[0]))
	for _, point := range points[1:] {
		p.LineTo(s.point(point))
	}
	if len(points) == 1 {
		p.LineTo(s.point(points[0]))
	}

	s.ctx.Push()
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.SetStrokeColor(stroke)
	s.ctx.SetStrokeWidth(width * mmPerPx)
	s.ctx.DrawPath(0.0, 0.0, p)
	s.ctx.Pop()
}

func (s *Surface) DrawCircle(class string, center pivotline.Point, r float64, fill color.RGBA) {
	x, y := s.point(center)
	s.ctx.Push()
	s.ctx.SetFillColor(fill)
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.DrawPath(x, y, canvas.Circle(r*mmPerPx))
	s.ctx.Pop()
}

func (s *Surface) DrawText(label pivotline.Label) {
	family, err := loadFamily()
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}

	face := family.Face(label.Size*ptPerPx, label.Color, canvas.FontRegular, canvas.FontNormal)
	align := canvas.Left
	switch label.Anchor {
	case pivotline.AnchorMiddle:
		align = canvas.Center
	case pivotline.AnchorEnd:
		align = canvas.Right
	}

	x, y := s.point(label.Pos)
	capHeight := face.Metrics().CapHeight
	switch label.Baseline {
	case pivotline.BaselineTop:
		y -= capHeight
	case pivotline.BaselineMiddle:
		y -= capHeight / 2.0
	}
	s.ctx.DrawText(x, y, canvas.NewTextLine(face, label.Text, align))
}
