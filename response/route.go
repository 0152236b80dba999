package response

import (
	"encoding/json"

	"github.com/osrmkit/osrmkit/errors"
)

type maneuverDoc struct {
	Type        string   `json:"type"`
	Modifier    string   `json:"modifier,omitempty"`
	Instruction string   `json:"instruction,omitempty"`
	Location    Location `json:"location"`
}

type stepDoc struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
	Maneuver maneuverDoc     `json:"maneuver"`
}

type annotationDoc struct {
	Duration    []float64 `json:"duration,omitempty"`
	Distance    []float64 `json:"distance,omitempty"`
	Nodes       []int64   `json:"nodes,omitempty"`
	Weight      []float64 `json:"weight,omitempty"`
	Datasources []int     `json:"datasources,omitempty"`
	Speed       []float64 `json:"speed,omitempty"`
}

type legDoc struct {
	Distance   float64        `json:"distance"`
	Duration   float64        `json:"duration"`
	Summary    string         `json:"summary,omitempty"`
	Steps      []stepDoc      `json:"steps"`
	Annotation *annotationDoc `json:"annotation,omitempty"`
}

type routeDoc struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
	Legs     []legDoc        `json:"legs"`
}

type routeBody struct {
	Routes    []routeDoc    `json:"routes"`
	Waypoints []waypointDoc `json:"waypoints,omitempty"`
}

// Route is a decoded Route service result.
type Route struct {
	payload payload
	body    routeBody
}

// NewRoute decodes a serialized Route payload.
func NewRoute(data []byte) (*Route, error) {
	r := &Route{payload: payload{data: data}}
	if err := json.Unmarshal(data, &r.body); err != nil {
		return nil, errors.Internal(err, "decode route payload")
	}
	return r, nil
}

// TakeBlob transfers the serialized payload out of the response.
func (r *Route) TakeBlob() (*Blob, error) { return r.payload.take() }

// Close releases the payload if it was not transferred. Structured
// accessors keep working on the decoded document.
func (r *Route) Close() { r.payload.close() }

func (r *Route) route(index int) (*routeDoc, error) {
	if index < 0 || index >= len(r.body.Routes) {
		return nil, errors.IndexOutOfRange("Route", index, len(r.body.Routes))
	}
	return &r.body.Routes[index], nil
}

func (r *Route) leg(route, leg int) (*legDoc, error) {
	rt, err := r.route(route)
	if err != nil {
		return nil, err
	}
	if leg < 0 || leg >= len(rt.Legs) {
		return nil, errors.IndexOutOfRange("Leg", leg, len(rt.Legs))
	}
	return &rt.Legs[leg], nil
}

// Distance returns the length of the primary route, in meters.
func (r *Route) Distance() (float64, error) {
	rt, err := r.route(0)
	if err != nil {
		return 0, err
	}
	return rt.Distance, nil
}

// Duration returns the travel time of the primary route, in seconds.
func (r *Route) Duration() (float64, error) {
	rt, err := r.route(0)
	if err != nil {
		return 0, err
	}
	return rt.Duration, nil
}

// AlternativeCount returns the total number of routes, primary
// included.
func (r *Route) AlternativeCount() int { return len(r.body.Routes) }

// DistanceAt returns the length of the route at index, in meters.
func (r *Route) DistanceAt(index int) (float64, error) {
	rt, err := r.route(index)
	if err != nil {
		return 0, err
	}
	return rt.Distance, nil
}

// DurationAt returns the travel time of the route at index, in seconds.
func (r *Route) DurationAt(index int) (float64, error) {
	rt, err := r.route(index)
	if err != nil {
		return 0, err
	}
	return rt.Duration, nil
}

// GeometryAt returns the geometry of the route at index: an encoded
// polyline string or raw geojson, depending on the request.
func (r *Route) GeometryAt(index int) (string, error) {
	rt, err := r.route(index)
	if err != nil {
		return "", err
	}
	return geometryString(rt.Geometry), nil
}

// LegCount returns the number of legs of the route at index.
func (r *Route) LegCount(index int) (int, error) {
	rt, err := r.route(index)
	if err != nil {
		return 0, err
	}
	return len(rt.Legs), nil
}

// LegDistance returns the length of one leg, in meters.
func (r *Route) LegDistance(route, leg int) (float64, error) {
	l, err := r.leg(route, leg)
	if err != nil {
		return 0, err
	}
	return l.Distance, nil
}

// LegDuration returns the travel time of one leg, in seconds.
func (r *Route) LegDuration(route, leg int) (float64, error) {
	l, err := r.leg(route, leg)
	if err != nil {
		return 0, err
	}
	return l.Duration, nil
}

// StepCount returns the number of turn-by-turn steps of one leg.
func (r *Route) StepCount(route, leg int) (int, error) {
	l, err := r.leg(route, leg)
	if err != nil {
		return 0, err
	}
	return len(l.Steps), nil
}

func (r *Route) step(route, leg, step int) (*stepDoc, error) {
	l, err := r.leg(route, leg)
	if err != nil {
		return nil, err
	}
	if step < 0 || step >= len(l.Steps) {
		return nil, errors.IndexOutOfRange("Step", step, len(l.Steps))
	}
	return &l.Steps[step], nil
}

// StepDistance returns the length of one step, in meters.
func (r *Route) StepDistance(route, leg, step int) (float64, error) {
	s, err := r.step(route, leg, step)
	if err != nil {
		return 0, err
	}
	return s.Distance, nil
}

// StepDuration returns the travel time of one step, in seconds.
func (r *Route) StepDuration(route, leg, step int) (float64, error) {
	s, err := r.step(route, leg, step)
	if err != nil {
		return 0, err
	}
	return s.Duration, nil
}

// StepInstruction returns the maneuver instruction text of one step.
func (r *Route) StepInstruction(route, leg, step int) (string, error) {
	s, err := r.step(route, leg, step)
	if err != nil {
		return "", err
	}
	return s.Maneuver.Instruction, nil
}

// WaypointCount returns the number of snapped input coordinates.
func (r *Route) WaypointCount() int { return len(r.body.Waypoints) }

func (r *Route) waypoint(index int) (*waypointDoc, error) {
	if index < 0 || index >= len(r.body.Waypoints) {
		return nil, errors.IndexOutOfRange("Waypoint", index, len(r.body.Waypoints))
	}
	return &r.body.Waypoints[index], nil
}

// WaypointLocation returns the snapped position of the waypoint at
// index.
func (r *Route) WaypointLocation(index int) (Location, error) {
	w, err := r.waypoint(index)
	if err != nil {
		return Location{}, err
	}
	return w.Location, nil
}

// WaypointName returns the street name the waypoint snapped to.
func (r *Route) WaypointName(index int) (string, error) {
	w, err := r.waypoint(index)
	if err != nil {
		return "", err
	}
	return w.Name, nil
}

// WaypointHint returns the opaque snapping hint of the waypoint, empty
// when hint generation was off.
func (r *Route) WaypointHint(index int) (string, error) {
	w, err := r.waypoint(index)
	if err != nil {
		return "", err
	}
	return w.Hint, nil
}
