package pivotline

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/colornames"
)

// DefaultPointSize is the marker radius used when the configuration has none.
const DefaultPointSize = 5.0

// DefaultLineColors are the line colors a host configures by default.
var DefaultLineColors = []string{"#FF5733", "#33C1FF", "#9D33FF", "#33FF57"}

// Category10 is the qualitative palette used when no line colors are configured.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Config is the user configuration of the chart.
type Config struct {
	LineColors []string `json:"lineColors,omitempty" yaml:"lineColors,omitempty"`
	PointSize  float64  `json:"pointSize,omitempty" yaml:"pointSize,omitempty"`
}

// DefaultConfig returns the configuration a host starts out with.
func DefaultConfig() Config {
	return Config{
		LineColors: append([]string{}, DefaultLineColors...),
		PointSize:  DefaultPointSize,
	}
}

// Colors returns the configured line colors, or Category10 if there are none.
func (cfg Config) Colors() []string {
	if len(cfg.LineColors) == 0 {
		return Category10
	}
	return cfg.LineColors
}

// Radius returns the configured point size, or DefaultPointSize if it is not positive.
func (cfg Config) Radius() float64 {
	if cfg.PointSize <= 0.0 {
		return DefaultPointSize
	}
	return cfg.PointSize
}

// ParseColor parses a CSS hexadecimal color (#rgb, #rgba, #rrggbb or #rrggbbaa) or a CSS color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if n := len(hex); n != 3 && n != 4 && n != 6 && n != 8 {
			return color.RGBA{}, fmt.Errorf("bad color %q", s)
		}
		for _, c := range hex {
			if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
				return color.RGBA{}, fmt.Errorf("bad color %q", s)
			}
		}
		return canvas.Hex(s), nil
	} else if col, ok := colornames.Map[strings.ToLower(s)]; ok {
		return col, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}
