// Package gochart implements a chart surface on top of the SVG renderer of github.com/wcharczuk/go-chart.
package gochart

import (
	"errors"
	"image/color"
	"io"
	"math"

	"github.com/tdewolff/pivotline"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoSurface is returned when writing a container without a surface.
var ErrNoSurface = errors.New("container has no surface")

const ptPerPx = 72.0 / 96.0

// Container is a fixed size container in pixels.
type Container struct {
	width, height int
	surface       *Surface
}

// New returns a container of the given size in pixels.
func New(width, height int) *Container {
	return &Container{width: width, height: height}
}

// ClientSize returns the size of the container in pixels.
func (c *Container) ClientSize() (float64, float64) {
	return float64(c.width), float64(c.height)
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

// Write writes the surface as SVG.
func (c *Container) Write(w io.Writer) error {
	if c.surface == nil {
		return ErrNoSurface
	} else if c.surface.err != nil {
		return c.surface.err
	}
	return c.surface.r.Save(w)
}

// Surface draws with a go-chart renderer. Coordinates and circle radii are rounded to whole pixels,
// since the SVG renderer of go-chart writes them as integers.
type Surface struct {
	width, height int
	r             chart.Renderer
	err           error
}

func (s *Surface) Clear() {
	s.err = nil
	r, err := chart.SVG(s.width, s.height)
	if err != nil {
		s.err = err
		return
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		s.err = err
		return
	}
	r.SetFont(font)
	s.r = r
}

func toColor(col color.RGBA) drawing.Color {
	return drawing.Color{R: col.R, G: col.G, B: col.B, A: col.A}
}

func px(f float64) int {
	return int(math.Round(f))
}

func (s *Surface) DrawLine(class string, points []pivotline.Point, stroke color.RGBA, width float64) {
	if s.err != nil || len(points) == 0 {
		return
	}

	s.r.ResetStyle()
	s.r.SetStrokeColor(toColor(stroke))
	s.r.SetFillColor(drawing.ColorTransparent)
	s.r.SetStrokeWidth(width)
	s.r.MoveTo(px(points[0].X), px(points[0].Y))
	for _, point := range points[1:] {
		s.r.LineTo(px(point.X), px(point.Y))
	}
	if len(points) == 1 {
		s.r.LineTo(px(points[0].X), px(points[0].Y))
	}
	s.r.Stroke()
}

func (s *Surface) DrawCircle(class string, center pivotline.Point, r float64, fill color.RGBA) {
	if s.err != nil {
		return
	}

	s.r.ResetStyle()
	s.r.SetFillColor(toColor(fill))
	s.r.SetStrokeColor(drawing.ColorTransparent)
	s.r.SetStrokeWidth(0.0)
	s.r.Circle(float64(px(r)), px(center.X), px(center.Y))
}

func (s *Surface) DrawText(label pivotline.Label) {
	if s.err != nil {
		return
	}

	s.r.ResetStyle()
	s.r.SetFontColor(toColor(label.Color))
	s.r.SetFontSize(label.Size * ptPerPx)

	box := s.r.MeasureText(label.Text)
	x, y := label.Pos.X, label.Pos.Y
	switch label.Anchor {
	case pivotline.AnchorMiddle:
		x -= float64(box.Width()) / 2.0
	case pivotline.AnchorEnd:
		x -= float64(box.Width())
	}
	switch label.Baseline {
	case pivotline.BaselineTop:
		y += float64(box.Height())
	case pivotline.BaselineMiddle:
		y += float64(box.Height()) / 2.0
	}
	s.r.Text(label.Text, px(x), px(y))
}
