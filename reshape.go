package pivotline

import (
	"time"
)

// SeriesPoint is a single point of a series.
type SeriesPoint struct {
	X time.Time
	Y float64
}

// Record is a reshaped row: the dimension value and the measure value per pivot key.
type Record struct {
	X time.Time
	Y map[string]float64
}

// Reshape flattens the pivoted measure of every row into a record. Every row must have a value for every pivot key.
func Reshape(rows []Row, dimension, measure Field, pivots []Field) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		cell, ok := row[dimension.Name]
		if !ok {
			return nil, &LookupError{Row: i, Field: dimension.Name}
		}
		x, err := toTime(cell.Value)
		if err != nil {
			return nil, &ValueError{Row: i, Field: dimension.Name, Value: cell.Value, Err: err}
		}

		cell, ok = row[measure.Name]
		if !ok {
			return nil, &LookupError{Row: i, Field: measure.Name}
		}
		record := Record{
			X: x,
			Y: make(map[string]float64, len(pivots)),
		}
		for _, pivot := range pivots {
			key := pivot.ID()
			value, ok := cell.Pivots[key]
			if !ok {
				return nil, &LookupError{Row: i, Field: measure.Name, Pivot: key}
			}
			y, err := toNumber(value.Value)
			if err != nil {
				return nil, &ValueError{Row: i, Field: measure.Name + "|" + key, Value: value.Value, Err: err}
			}
			record.Y[key] = y
		}
		records = append(records, record)
	}
	return records, nil
}

// Series extracts the points of pivot key from records, in record order.
func Series(records []Record, key string) []SeriesPoint {
	points := make([]SeriesPoint, len(records))
	for i, record := range records {
		points[i] = SeriesPoint{X: record.X, Y: record.Y[key]}
	}
	return points
}
