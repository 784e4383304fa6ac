package pivotline

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Linear maps the domain [D0,D1] linearly onto the range [R0,R1]. A degenerate domain maps everything to the middle of the range.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// Map returns the range value of v.
func (s Linear) Map(v float64) float64 {
	if s.D0 == s.D1 || math.IsNaN(s.D1-s.D0) {
		return (s.R0 + s.R1) / 2.0
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Ticks returns the major ticks of the domain.
func (s Linear) Ticks() []Tick {
	ticks := linearTicks(math.Min(s.D0, s.D1), math.Max(s.D0, s.D1))
	for i := range ticks {
		ticks[i].Pos = s.Map(ticks[i].Value)
	}
	return ticks
}

// Time maps the time domain [D0,D1] linearly onto the range [R0,R1].
type Time struct {
	D0, D1 time.Time
	R0, R1 float64
}

// Map returns the range value of t.
func (s Time) Map(t time.Time) float64 {
	return s.linear().Map(unixSeconds(t))
}

func (s Time) linear() Linear {
	return Linear{unixSeconds(s.D0), unixSeconds(s.D1), s.R0, s.R1}
}

// Ticks returns calendar aligned ticks of the domain.
func (s Time) Ticks() []Tick {
	lin := s.linear()
	ticks := timeTicks(math.Min(lin.D0, lin.D1), math.Max(lin.D0, lin.D1))
	for i := range ticks {
		ticks[i].Pos = lin.Map(ticks[i].Value)
	}
	return ticks
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// TimeExtent returns the earliest and latest time of the records.
func TimeExtent(records []Record) (time.Time, time.Time) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}
	}
	min, max := records[0].X, records[0].X
	for _, record := range records[1:] {
		if record.X.Before(min) {
			min = record.X
		} else if max.Before(record.X) {
			max = record.X
		}
	}
	return min, max
}

// MaxValue returns the largest value of the pivot keys over all records, or zero if there are none.
func MaxValue(records []Record, keys []string) float64 {
	values := make([]float64, 0, len(records)*len(keys))
	for _, record := range records {
		for _, key := range keys {
			values = append(values, record.Y[key])
		}
	}
	if len(values) == 0 {
		return 0.0
	}
	return floats.Max(values)
}
