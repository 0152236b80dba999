package response

import (
	"encoding/json"
	"math"
)

// Location is a longitude/latitude pair as carried on the wire,
// [lon, lat].
type Location [2]float64

// Lon returns the longitude component.
func (l Location) Lon() float64 { return l[0] }

// Lat returns the latitude component.
func (l Location) Lat() float64 { return l[1] }

// waypointDoc is the wire shape of a snapped input coordinate.
type waypointDoc struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Distance float64  `json:"distance"`
	Hint     string   `json:"hint,omitempty"`
}

// geometryString renders a geometry field for the structured accessors.
// Polyline geometries are JSON strings and come back unquoted; geojson
// geometries come back as their raw JSON text.
func geometryString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// cell is one matrix entry. Unreachable pairs travel as JSON null and
// decode to +Inf.
type cell float64

func (c *cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = cell(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = cell(v)
	return nil
}

func (c cell) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(c), 1) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(c))
}
