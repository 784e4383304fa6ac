package pivotline

import (
	"fmt"
	"image/color"
)

// Visualization is the lifecycle a host drives: Initialize once, then Render on every data, configuration or size change.
type Visualization interface {
	Initialize(container Container, cfg Config)
	Render(rows []Row, container Container, cfg Config, shape QueryShape) error
}

// Chart is a multi-series line chart with one series per pivot key.
type Chart struct {
	reporter ErrorReporter
	surface  Surface
}

// NewChart returns a chart that reports configuration errors to reporter.
func NewChart(reporter ErrorReporter) *Chart {
	if reporter == nil {
		reporter = ErrorReporterFunc(func(ConfigurationError) {})
	}
	return &Chart{reporter: reporter}
}

// Initialize creates the drawing surface inside container.
func (c *Chart) Initialize(container Container, cfg Config) {
	c.surface = container.NewSurface()
}

// Surface returns the drawing surface, or nil if the chart is not initialized.
func (c *Chart) Surface() Surface {
	return c.surface
}

// Render redraws the chart from scratch. Configuration errors are reported to the host and leave the surface empty; data errors are returned.
// Only the first dimension and the first measure of shape are charted.
func (c *Chart) Render(rows []Row, container Container, cfg Config, shape QueryShape) error {
	if c.surface == nil {
		return ErrNotInitialized
	}
	c.surface.Clear()

	fields := shape.Fields
	if len(fields.Dimensions) == 0 || len(fields.Pivots) == 0 || len(fields.MeasureLike) == 0 {
		c.reporter.AddError(errShape)
		return nil
	}
	dimension := fields.Dimensions[0]
	measure := fields.MeasureLike[0]

	records, err := Reshape(rows, dimension, measure, fields.Pivots)
	if err != nil {
		return err
	}

	keys := make([]string, len(fields.Pivots))
	for i, pivot := range fields.Pivots {
		keys[i] = pivot.ID()
	}

	palette := []color.RGBA{}
	for _, s := range cfg.Colors() {
		col, err := ParseColor(s)
		if err != nil {
			c.reporter.AddError(ConfigurationError{
				Title:   "Invalid Line Color",
				Message: fmt.Sprintf("Line color %q is not a hexadecimal color or a color name.", s),
			})
			return nil
		}
		palette = append(palette, col)
	}

	width, height := container.ClientSize()
	plan := NewPlan(records, keys, NewOrdinal(keys, palette), cfg.Radius(), width, height)
	plan.Draw(c.surface)
	return nil
}
