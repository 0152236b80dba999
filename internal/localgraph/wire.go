package localgraph

import (
	"encoding/json"
	"math"

	"github.com/twpayne/go-polyline"

	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

// Wire shapes of the serialized payloads. Everything is marshaled from
// these structs so repeat queries produce byte-identical documents.

type waypointOut struct {
	Name     string     `json:"name"`
	Location [2]float64 `json:"location"`
	Distance float64    `json:"distance"`
	Hint     string     `json:"hint,omitempty"`
}

type maneuverOut struct {
	Type        string     `json:"type"`
	Instruction string     `json:"instruction,omitempty"`
	Location    [2]float64 `json:"location"`
}

type stepOut struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
	Maneuver maneuverOut     `json:"maneuver"`
}

type annotationOut struct {
	Duration    []float64 `json:"duration,omitempty"`
	Distance    []float64 `json:"distance,omitempty"`
	Nodes       []int64   `json:"nodes,omitempty"`
	Weight      []float64 `json:"weight,omitempty"`
	Datasources []int     `json:"datasources,omitempty"`
	Speed       []float64 `json:"speed,omitempty"`
}

type legOut struct {
	Distance   float64        `json:"distance"`
	Duration   float64        `json:"duration"`
	Summary    string         `json:"summary,omitempty"`
	Steps      []stepOut      `json:"steps"`
	Annotation *annotationOut `json:"annotation,omitempty"`
}

type routeOut struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
	Legs     []legOut        `json:"legs"`
}

type geojsonLine struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// matrixCell marshals +Inf as JSON null, the wire form of an
// unreachable pair.
type matrixCell float64

func (c matrixCell) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(c), 1) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(c))
}

var polyline6Codec = polyline.Codec{Dim: 2, Scale: 1e6}

// encodeGeometry renders a node sequence in the requested encoding.
func (b *Backend) encodeGeometry(nodes []int, geometries params.Geometries) (json.RawMessage, error) {
	switch geometries {
	case params.GeometriesGeoJSON:
		line := geojsonLine{Type: "LineString", Coordinates: make([][2]float64, len(nodes))}
		for i, n := range nodes {
			line.Coordinates[i] = [2]float64{b.g.nodes[n].Lon, b.g.nodes[n].Lat}
		}
		data, err := json.Marshal(line)
		if err != nil {
			return nil, errors.Internal(err, "encode geojson geometry")
		}
		return data, nil

	default:
		coords := make([][]float64, len(nodes))
		for i, n := range nodes {
			coords[i] = []float64{b.g.nodes[n].Lat, b.g.nodes[n].Lon}
		}
		var encoded []byte
		if geometries == params.GeometriesPolyline6 {
			encoded = polyline6Codec.EncodeCoords(nil, coords)
		} else {
			encoded = polyline.EncodeCoords(coords)
		}
		data, err := json.Marshal(string(encoded))
		if err != nil {
			return nil, errors.Internal(err, "encode polyline geometry")
		}
		return data, nil
	}
}

// pathNodes expands a path's edge sequence into the visited node
// sequence, start node included.
func (b *Backend) pathNodes(start int, path *pathResult) []int {
	nodes := make([]int, 0, len(path.edges)+1)
	nodes = append(nodes, start)
	for _, ei := range path.edges {
		nodes = append(nodes, b.g.index[b.g.edges[ei].To])
	}
	return nodes
}
