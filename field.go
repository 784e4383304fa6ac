package pivotline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// Field describes a dimension, measure or pivot column as supplied by the host.
type Field struct {
	Name  string `json:"name"`
	Key   string `json:"key,omitempty"`
	Label string `json:"label,omitempty"`
}

// ID returns the key of the field, or its name if it has no key.
func (f Field) ID() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

func (f Field) String() string {
	return f.ID()
}

// Fields are the fields available in a query.
type Fields struct {
	Dimensions  []Field `json:"dimensions"`
	Pivots      []Field `json:"pivots"`
	MeasureLike []Field `json:"measure_like"`
}

// QueryShape describes which fields a query returned.
type QueryShape struct {
	Fields Fields `json:"fields"`
}

// QueryResponse is a query shape together with its rows.
type QueryResponse struct {
	QueryShape
	Data []Row `json:"data"`
}

// Cell is a single value of a row. Pivoted measures hold one cell per pivot key in Pivots instead of a value.
type Cell struct {
	Value    interface{}
	Rendered string
	Pivots   map[string]Cell
}

// IsPivoted returns true if the cell holds values per pivot key.
func (c Cell) IsPivoted() bool {
	return c.Pivots != nil
}

// UnmarshalJSON decodes {"value": ...} as a plain cell and any other object as a pivoted cell.
// Null or non-string rendered values are converted to strings.
func (c *Cell) UnmarshalJSON(b []byte) error {
	if b = bytes.TrimSpace(b); len(b) == 0 || b[0] != '{' {
		// bare scalar
		*c = Cell{}
		if err := json.Unmarshal(b, &c.Value); err != nil {
			return fmt.Errorf("cell value: %w", err)
		}
		return nil
	}

	members := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &members); err != nil {
		return fmt.Errorf("cell: %w", err)
	}

	if isPlainCell(members) {
		*c = Cell{}
		if err := json.Unmarshal(members["value"], &c.Value); err != nil {
			return fmt.Errorf("cell value: %w", err)
		}
		if raw, ok := members["rendered"]; ok {
			var rendered interface{}
			if err := json.Unmarshal(raw, &rendered); err != nil {
				return fmt.Errorf("cell rendered: %w", err)
			}
			c.Rendered = cast.ToString(rendered)
		}
		return nil
	}

	pivots := make(map[string]Cell, len(members))
	for key, raw := range members {
		var cell Cell
		if err := json.Unmarshal(raw, &cell); err != nil {
			return fmt.Errorf("pivot %q: %w", key, err)
		}
		pivots[key] = cell
	}
	*c = Cell{Pivots: pivots}
	return nil
}

// cellMembers are the members a plain cell may have besides its value.
var cellMembers = map[string]bool{
	"rendered":         true,
	"html":             true,
	"links":            true,
	"filterable_value": true,
}

// isPlainCell returns true if members hold a scalar "value" and only known cell metadata otherwise, so that a pivot keyed "value" stays pivoted.
func isPlainCell(members map[string]json.RawMessage) bool {
	raw, ok := members["value"]
	if !ok {
		return false
	} else if raw = bytes.TrimSpace(raw); 0 < len(raw) && raw[0] == '{' {
		return false
	}
	for key := range members {
		if key != "value" && !cellMembers[key] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the cell in the same format UnmarshalJSON accepts.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsPivoted() {
		return json.Marshal(c.Pivots)
	}
	plain := struct {
		Value    interface{} `json:"value"`
		Rendered string      `json:"rendered,omitempty"`
	}{c.Value, c.Rendered}
	return json.Marshal(plain)
}

// Row maps field names to cells.
type Row map[string]Cell
