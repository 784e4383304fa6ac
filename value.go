package pivotline

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/spf13/cast"
)

var errNull = errors.New("null value")
var errNaN = errors.New("not a number")
var errInf = errors.New("infinite value")

// toTime converts a dimension value to a timestamp. Numbers are milliseconds since the Unix epoch, strings without a zone are in UTC.
func toTime(v interface{}) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, errNull
	case time.Time:
		return x, nil
	case float64:
		return fromMillis(x)
	case float32:
		return fromMillis(float64(x))
	case int:
		return time.UnixMilli(int64(x)).UTC(), nil
	case int64:
		return time.UnixMilli(x).UTC(), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return time.Time{}, err
		}
		return fromMillis(f)
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func fromMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, errNaN
	}
	sec, frac := math.Modf(ms / 1000.0)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC(), nil
}

// toNumber converts a measure value to a float.
func toNumber(v interface{}) (float64, error) {
	if v == nil {
		return 0.0, errNull
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0.0, err
	} else if math.IsNaN(f) {
		return 0.0, errNaN
	} else if math.IsInf(f, 0) {
		return 0.0, errInf
	}
	return f, nil
}
