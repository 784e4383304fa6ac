package pivotline

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gonum.org/v1/plot"
)

// Tick is an axis tick at domain value Value and range position Pos.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

var labelPrinter = message.NewPrinter(language.English)

// linearTicks returns the labelled ticks of [min,max] with digit grouped labels.
func linearTicks(min, max float64) []Tick {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	} else if max <= min {
		return []Tick{{Value: min, Label: formatNumber(min, 6)}}
	}

	ticks := []Tick{}
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if t.IsMinor() {
			continue
		}
		digits := 0
		if i := strings.IndexByte(t.Label, '.'); i != -1 && !strings.ContainsAny(t.Label, "eE") {
			digits = len(t.Label) - i - 1
		}
		ticks = append(ticks, Tick{Value: t.Value, Label: formatNumber(t.Value, digits)})
	}
	return ticks
}

func formatNumber(v float64, digits int) string {
	return labelPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
}

// timeTicks returns calendar aligned ticks of [min,max] in Unix seconds.
func timeTicks(min, max float64) []Tick {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}

	interval := pickInterval(max - min)
	if max <= min {
		interval.layout = "2006-01-02"
	}
	ticker := plot.TimeTicks{
		Ticker: calendarTicker{interval},
		Format: interval.layout,
		Time:   plot.UTCUnixTime,
	}
	ticks := []Tick{}
	for _, t := range ticker.Ticks(min, max) {
		ticks = append(ticks, Tick{Value: t.Value, Label: t.Label})
	}
	return ticks
}

const tickCount = 10

type interval struct {
	step   time.Duration
	months int
	layout string
}

var intervals = []interval{
	{time.Second, 0, ":05"},
	{5 * time.Second, 0, ":05"},
	{15 * time.Second, 0, ":05"},
	{30 * time.Second, 0, ":05"},
	{time.Minute, 0, "03:04"},
	{5 * time.Minute, 0, "03:04"},
	{15 * time.Minute, 0, "03:04"},
	{30 * time.Minute, 0, "03:04"},
	{time.Hour, 0, "03 PM"},
	{3 * time.Hour, 0, "03 PM"},
	{6 * time.Hour, 0, "03 PM"},
	{12 * time.Hour, 0, "03 PM"},
	{24 * time.Hour, 0, "Jan 02"},
	{48 * time.Hour, 0, "Jan 02"},
	{7 * 24 * time.Hour, 0, "Jan 02"},
	{0, 1, "January"},
	{0, 3, "January"},
	{0, 12, "2006"},
	{0, 2 * 12, "2006"},
	{0, 5 * 12, "2006"},
	{0, 10 * 12, "2006"},
	{0, 20 * 12, "2006"},
	{0, 50 * 12, "2006"},
	{0, 100 * 12, "2006"},
	{0, 200 * 12, "2006"},
	{0, 500 * 12, "2006"},
	{0, 1000 * 12, "2006"},
}

const secondsPerMonth = 365.25 * 24 * 60 * 60 / 12

// approx returns the length of the interval in seconds; durations overflow beyond some 290 years.
func (iv interval) approx() float64 {
	if iv.months != 0 {
		return float64(iv.months) * secondsPerMonth
	}
	return iv.step.Seconds()
}

// years returns the number of years per step, or zero if the interval is not a whole number of years.
func (iv interval) years() int {
	if iv.months != 0 && iv.months%12 == 0 {
		return iv.months / 12
	}
	return 0
}

// pickInterval returns the smallest interval that gives at most about tickCount ticks over span seconds.
func pickInterval(span float64) interval {
	target := span / tickCount
	for _, iv := range intervals {
		if target <= iv.approx() {
			return iv
		}
	}
	// multiples of the largest step beyond that
	iv := intervals[len(intervals)-1]
	if n := math.Ceil(target / iv.approx()); 1 < n && n*float64(iv.months) < math.MaxInt32 {
		iv.months *= int(n)
	}
	return iv
}

// calendarTicker places ticks on multiples of its interval in UTC.
type calendarTicker struct {
	interval
}

func (c calendarTicker) Ticks(min, max float64) []plot.Tick {
	t0, t1 := plot.UTCUnixTime(min), plot.UTCUnixTime(max)
	if !t0.Before(t1) {
		return []plot.Tick{{Value: min, Label: "-"}}
	}

	var t time.Time
	if years := c.years(); years != 0 {
		year := t0.Year() - ((t0.Year()%years)+years)%years
		t = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else if c.months != 0 {
		t = time.Date(t0.Year(), t0.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else if c.step%(24*time.Hour) == 0 {
		t = time.Date(t0.Year(), t0.Month(), t0.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		t = t0.Truncate(c.step)
	}

	ticks := []plot.Tick{}
	for ; !t1.Before(t); t = c.next(t) {
		if t.Before(t0) {
			continue
		}
		// TimeTicks only formats labelled ticks
		ticks = append(ticks, plot.Tick{Value: unixSeconds(t), Label: "-"})
	}
	return ticks
}

func (c calendarTicker) next(t time.Time) time.Time {
	if c.months != 0 {
		return t.AddDate(0, c.months, 0)
	}
	return t.Add(c.step)
}
