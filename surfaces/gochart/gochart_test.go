package gochart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tdewolff/pivotline"
	"github.com/tdewolff/test"
)

func TestGoChart(t *testing.T) {
	rows := []pivotline.Row{
		{"date": {Value: "2024-01-01"}, "count": {Pivots: map[string]pivotline.Cell{"A": {Value: 10.0}, "B": {Value: 20.0}}}},
		{"date": {Value: "2024-01-02"}, "count": {Pivots: map[string]pivotline.Cell{"A": {Value: 15.0}, "B": {Value: 5.0}}}},
	}
	shape := pivotline.QueryShape{Fields: pivotline.Fields{
		Dimensions:  []pivotline.Field{{Name: "date"}},
		MeasureLike: []pivotline.Field{{Name: "count"}},
		Pivots:      []pivotline.Field{{Name: "status", Key: "A"}, {Name: "status", Key: "B"}},
	}}

	c := New(400, 300)
	w, h := c.ClientSize()
	test.Float(t, w, 400.0)
	test.Float(t, h, 300.0)

	chart := pivotline.NewChart(nil)
	chart.Initialize(c, pivotline.DefaultConfig())
	test.Error(t, chart.Render(rows, c, pivotline.DefaultConfig(), shape))

	buf := &bytes.Buffer{}
	test.Error(t, c.Write(buf))
	test.That(t, bytes.Contains(buf.Bytes(), []byte("<svg")), "not an SVG")
	test.T(t, bytes.Count(buf.Bytes(), []byte("<circle")), 4)

	// a second render starts from an empty surface
	test.Error(t, chart.Render(rows, c, pivotline.DefaultConfig(), shape))
	buf.Reset()
	test.Error(t, c.Write(buf))
	test.T(t, bytes.Count(buf.Bytes(), []byte("<circle")), 4)

	cfg := pivotline.Config{PointSize: 2.5}
	test.Error(t, chart.Render(rows, c, cfg, shape))
	buf.Reset()
	test.Error(t, c.Write(buf))
	test.T(t, bytes.Count(buf.Bytes(), []byte(`r="3"`)), 4)
}

func TestGoChartNoSurface(t *testing.T) {
	err := New(10, 10).Write(&bytes.Buffer{})
	test.That(t, errors.Is(err, ErrNoSurface))
}

func TestPx(t *testing.T) {
	test.T(t, px(1.4), 1)
	test.T(t, px(1.5), 2)
	test.T(t, px(-0.6), -1)
}
