package pivotline

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

type recordedLine struct {
	Class  string
	Points []Point
	Color  color.RGBA
	Width  float64
}

type recordedCircle struct {
	Class  string
	Center Point
	R      float64
	Color  color.RGBA
}

// recorder is a container and surface that records draw calls.
type recorder struct {
	width, height float64
	surfaces      int
	clears        int

	lines   []recordedLine
	circles []recordedCircle
	labels  []Label
}

func newRecorder(width, height float64) *recorder {
	return &recorder{width: width, height: height}
}

func (r *recorder) ClientSize() (float64, float64) {
	return r.width, r.height
}

func (r *recorder) NewSurface() Surface {
	r.surfaces++
	return r
}

func (r *recorder) Clear() {
	r.clears++
	r.lines, r.circles, r.labels = nil, nil, nil
}

func (r *recorder) DrawLine(class string, points []Point, stroke color.RGBA, width float64) {
	r.lines = append(r.lines, recordedLine{class, append([]Point{}, points...), stroke, width})
}

func (r *recorder) DrawCircle(class string, center Point, radius float64, fill color.RGBA) {
	r.circles = append(r.circles, recordedCircle{class, center, radius, fill})
}

func (r *recorder) DrawText(label Label) {
	r.labels = append(r.labels, label)
}

func (r *recorder) empty() bool {
	return len(r.lines) == 0 && len(r.circles) == 0 && len(r.labels) == 0
}

func (r *recorder) seriesLines() []recordedLine {
	lines := []recordedLine{}
	for _, line := range r.lines {
		if strings.HasPrefix(line.Class, "line-") {
			lines = append(lines, line)
		}
	}
	return lines
}

type errorLog []ConfigurationError

func (l *errorLog) AddError(err ConfigurationError) {
	*l = append(*l, err)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// pivotRow returns a row with dimension "date" and measure "count" pivoted by the keys of values.
func pivotRow(x interface{}, values map[string]interface{}) Row {
	pivots := map[string]Cell{}
	for key, value := range values {
		pivots[key] = Cell{Value: value}
	}
	return Row{
		"date":  Cell{Value: x},
		"count": Cell{Pivots: pivots},
	}
}

func pivotShape(keys ...string) QueryShape {
	shape := QueryShape{Fields: Fields{
		Dimensions:  []Field{{Name: "date"}},
		MeasureLike: []Field{{Name: "count"}},
	}}
	for _, key := range keys {
		shape.Fields.Pivots = append(shape.Fields.Pivots, Field{Name: "status", Key: key})
	}
	return shape
}

func mustColor(t *testing.T, s string) color.RGBA {
	t.Helper()
	col, err := ParseColor(s)
	test.Error(t, err)
	return col
}

func reshapeRows(rows []Row, keys ...string) error {
	_, err := Reshape(rows, Field{Name: "date"}, Field{Name: "count"}, pivotShape(keys...).Fields.Pivots)
	return err
}
