package pivotline

// Identification of the chart in a host registry.
const (
	ID   = "pivoted_line_chart"
	Name = "Pivoted Line Chart"
)

// Option describes a user configurable option of a visualization.
type Option struct {
	Name    string
	Type    string // array or number
	Label   string
	Display string
	Default interface{}
}

// Definition is a visualization as registered with a host.
type Definition struct {
	ID      string
	Label   string
	Options []Option
	New     func(ErrorReporter) Visualization
}

// Registry is the host's plugin registry.
type Registry interface {
	Add(Definition) error
}

// Options are the configuration options of the chart, see Config.
var Options = []Option{
	{
		Name:    "lineColors",
		Type:    "array",
		Label:   "Line Colors",
		Display: "color",
		Default: DefaultLineColors,
	},
	{
		Name:    "pointSize",
		Type:    "number",
		Label:   "Point Size",
		Default: DefaultPointSize,
	},
}

// Register adds the chart to the host registry.
func Register(r Registry) error {
	return r.Add(Definition{
		ID:      ID,
		Label:   Name,
		Options: Options,
		New: func(reporter ErrorReporter) Visualization {
			return NewChart(reporter)
		},
	})
}
