package pivotline

import (
	"image/color"
)

// Point is a position in container pixels, with the origin at the top-left and y pointing down.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Anchor is the horizontal alignment of a label with respect to its position.
type Anchor int

// see Anchor
const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline is the vertical alignment of a label with respect to its position.
type Baseline int

// see Baseline
const (
	BaselineTop Baseline = iota
	BaselineMiddle
)

// Label is a line of text.
type Label struct {
	Text     string
	Pos      Point
	Anchor   Anchor
	Baseline Baseline
	Size     float64 // font size in pixels
	Color    color.RGBA
}

// Surface is a drawing surface that is fully redrawn on every render.
type Surface interface {
	// Clear removes everything drawn so far.
	Clear()
	DrawLine(class string, points []Point, stroke color.RGBA, width float64)
	DrawCircle(class string, center Point, r float64, fill color.RGBA)
	DrawText(label Label)
}

// Container is the host element a chart draws into.
type Container interface {
	ClientSize() (width, height float64)
	// NewSurface returns a surface covering the whole container.
	NewSurface() Surface
}
