package pivotline

import (
	"image/color"
)

// Margins around the plot area in pixels.
const (
	MarginTop    = 20.0
	MarginRight  = 20.0
	MarginBottom = 30.0
	MarginLeft   = 40.0
)

const (
	lineWidth     = 1.5
	tickSize      = 6.0
	tickPadding   = 3.0
	axisFontSize  = 10.0
	axisLineWidth = 1.0
)

// Orient is the side of the plot area an axis is drawn on.
type Orient int

// see Orient
const (
	Bottom Orient = iota
	Left
)

// Axis is an axis at Origin spanning the range [R0,R1] along its direction.
type Axis struct {
	Orient Orient
	Origin Point
	R0, R1 float64
	Ticks  []Tick
}

// SeriesMark is the line and point markers of one pivot key.
type SeriesMark struct {
	Key    string
	Color  color.RGBA
	Points []Point
}

// Plan holds the geometry of a chart; it is computed without touching a surface.
type Plan struct {
	Width, Height           float64
	InnerWidth, InnerHeight float64
	X                       Time
	Y                       Linear
	XAxis, YAxis            Axis
	Series                  []SeriesMark
	Radius                  float64
}

// NewPlan computes scales, axes and series positions for the records in a container of the given size. Without records the x axis has no ticks and there are no series.
func NewPlan(records []Record, keys []string, colors *Ordinal[color.RGBA], radius, width, height float64) *Plan {
	innerWidth := width - MarginLeft - MarginRight
	innerHeight := height - MarginTop - MarginBottom

	x0, x1 := TimeExtent(records)
	xScale := Time{x0, x1, 0.0, innerWidth}
	yScale := Linear{0.0, MaxValue(records, keys), innerHeight, 0.0}

	offset := Point{MarginLeft, MarginTop}
	plan := &Plan{
		Width:       width,
		Height:      height,
		InnerWidth:  innerWidth,
		InnerHeight: innerHeight,
		X:           xScale,
		Y:           yScale,
		XAxis: Axis{
			Orient: Bottom,
			Origin: Point{MarginLeft, MarginTop + innerHeight},
			R0:     xScale.R0,
			R1:     xScale.R1,
		},
		YAxis: Axis{
			Orient: Left,
			Origin: offset,
			R0:     yScale.R0,
			R1:     yScale.R1,
			Ticks:  yScale.Ticks(),
		},
		Radius: radius,
	}
	if len(records) == 0 {
		// no time extent to label or plot
		return plan
	}
	plan.XAxis.Ticks = xScale.Ticks()

	for _, key := range keys {
		points := make([]Point, 0, len(records))
		for _, p := range Series(records, key) {
			points = append(points, offset.Add(Point{xScale.Map(p.X), yScale.Map(p.Y)}))
		}
		plan.Series = append(plan.Series, SeriesMark{
			Key:    key,
			Color:  colors.Map(key),
			Points: points,
		})
	}
	return plan
}

// Draw draws the axes and then every series in order onto surface.
func (p *Plan) Draw(surface Surface) {
	p.XAxis.Draw(surface)
	p.YAxis.Draw(surface)
	for _, series := range p.Series {
		surface.DrawLine("line-"+series.Key, series.Points, series.Color, lineWidth)
		for _, point := range series.Points {
			surface.DrawCircle("dot-"+series.Key, point, p.Radius, series.Color)
		}
	}
}

// Draw draws the domain line, tick marks and tick labels of the axis.
func (a Axis) Draw(surface Surface) {
	black := color.RGBA{0, 0, 0, 255}
	at := func(along, across float64) Point {
		if a.Orient == Bottom {
			return a.Origin.Add(Point{along, across})
		}
		return a.Origin.Add(Point{-across, along})
	}

	domain := []Point{at(a.R0, tickSize), at(a.R0, 0.0), at(a.R1, 0.0), at(a.R1, tickSize)}
	surface.DrawLine("domain", domain, black, axisLineWidth)
	for _, tick := range a.Ticks {
		surface.DrawLine("tick", []Point{at(tick.Pos, 0.0), at(tick.Pos, tickSize)}, black, axisLineWidth)

		label := Label{
			Text:  tick.Label,
			Pos:   at(tick.Pos, tickSize+tickPadding),
			Size:  axisFontSize,
			Color: black,
		}
		if a.Orient == Bottom {
			label.Anchor, label.Baseline = AnchorMiddle, BaselineTop
		} else {
			label.Anchor, label.Baseline = AnchorEnd, BaselineMiddle
		}
		surface.DrawText(label)
	}
}
