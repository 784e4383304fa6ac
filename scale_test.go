package pivotline

import (
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLinear(t *testing.T) {
	s := Linear{0.0, 20.0, 250.0, 0.0}
	test.Float(t, s.Map(0.0), 250.0)
	test.Float(t, s.Map(20.0), 0.0)
	test.Float(t, s.Map(5.0), 187.5)
	test.Float(t, s.Map(-10.0), 375.0)

	// degenerate domain
	s = Linear{0.0, 0.0, 250.0, 0.0}
	test.Float(t, s.Map(0.0), 125.0)
	test.Float(t, s.Map(3.0), 125.0)
}

func TestLinearTicks(t *testing.T) {
	ticks := Linear{0.0, 20.0, 250.0, 0.0}.Ticks()
	test.That(t, 1 < len(ticks), "too few ticks")
	test.String(t, ticks[0].Label, "0")
	test.Float(t, ticks[0].Pos, 250.0)
	for i, tick := range ticks {
		test.That(t, 0.0 <= tick.Value && tick.Value <= 20.0, "tick outside domain")
		if 0 < i {
			test.That(t, ticks[i-1].Value < tick.Value, "ticks not increasing")
		}
	}

	grouped := false
	for _, tick := range (Linear{0.0, 5000.0, 100.0, 0.0}).Ticks() {
		grouped = grouped || strings.Contains(tick.Label, ",")
	}
	test.That(t, grouped, "labels without digit grouping")

	ticks = Linear{0.0, 0.0, 250.0, 0.0}.Ticks()
	test.T(t, len(ticks), 1)
	test.String(t, ticks[0].Label, "0")
	test.Float(t, ticks[0].Pos, 125.0)
}

func TestTime(t *testing.T) {
	s := Time{date("2024-01-01"), date("2024-01-03"), 0.0, 340.0}
	test.Float(t, s.Map(date("2024-01-01")), 0.0)
	test.Float(t, s.Map(date("2024-01-02")), 170.0)
	test.Float(t, s.Map(date("2024-01-03")), 340.0)

	s = Time{date("2024-01-01"), date("2024-01-01"), 0.0, 340.0}
	test.Float(t, s.Map(date("2024-01-01")), 170.0)
}

func TestTimeTicks(t *testing.T) {
	ticks := Time{date("2024-01-01"), date("2024-01-11"), 0.0, 100.0}.Ticks()
	test.T(t, len(ticks), 11)
	test.String(t, ticks[0].Label, "Jan 01")
	test.String(t, ticks[10].Label, "Jan 11")
	test.Float(t, ticks[0].Pos, 0.0)
	test.Float(t, ticks[5].Pos, 50.0)

	ticks = Time{date("2020-01-01"), date("2024-01-01"), 0.0, 100.0}.Ticks()
	test.String(t, ticks[0].Label, "2020")
	test.String(t, ticks[len(ticks)-1].Label, "2024")

	ticks = Time{date("1970-01-01"), date("2024-01-01"), 0.0, 340.0}.Ticks()
	test.T(t, len(ticks), 6)
	test.String(t, ticks[0].Label, "1970")
	test.String(t, ticks[1].Label, "1980")
	test.String(t, ticks[5].Label, "2020")

	ticks = Time{date("1000-01-01"), date("3000-01-01"), 0.0, 340.0}.Ticks()
	test.That(t, len(ticks) <= tickCount+1, "too many ticks: ", len(ticks))
	test.String(t, ticks[0].Label, "1000")
	test.String(t, ticks[len(ticks)-1].Label, "3000")

	ticks = Time{date("2024-01-01"), date("2024-01-01"), 0.0, 100.0}.Ticks()
	test.T(t, len(ticks), 1)
	test.String(t, ticks[0].Label, "2024-01-01")
	test.Float(t, ticks[0].Pos, 50.0)
}

func TestInfiniteTicks(t *testing.T) {
	test.T(t, len(linearTicks(0.0, math.Inf(1))), 0)
	test.T(t, len(timeTicks(math.Inf(-1), 0.0)), 0)
}

func TestExtent(t *testing.T) {
	records := []Record{
		{X: date("2024-01-02"), Y: map[string]float64{"A": 3.0, "B": 1.0}},
		{X: date("2024-01-01"), Y: map[string]float64{"A": 2.0, "B": 7.0}},
		{X: date("2024-01-05"), Y: map[string]float64{"A": 4.0, "B": 0.0}},
	}
	min, max := TimeExtent(records)
	test.That(t, min.Equal(date("2024-01-01")), min)
	test.That(t, max.Equal(date("2024-01-05")), max)
	test.Float(t, MaxValue(records, []string{"A", "B"}), 7.0)
	test.Float(t, MaxValue(records, []string{"A"}), 4.0)
	test.Float(t, MaxValue(nil, []string{"A"}), 0.0)
}
