package response

import (
	"encoding/json"

	"github.com/osrmkit/osrmkit/errors"
)

type tripWaypointDoc struct {
	waypointDoc
	TripsIndex    int `json:"trips_index"`
	WaypointIndex int `json:"waypoint_index"`
}

type tripBody struct {
	Trips     []routeDoc        `json:"trips"`
	Waypoints []tripWaypointDoc `json:"waypoints"`
}

// Trip is a decoded Trip service result.
type Trip struct {
	payload payload
	body    tripBody
}

// NewTrip decodes a serialized Trip payload.
func NewTrip(data []byte) (*Trip, error) {
	t := &Trip{payload: payload{data: data}}
	if err := json.Unmarshal(data, &t.body); err != nil {
		return nil, errors.Internal(err, "decode trip payload")
	}
	return t, nil
}

// TakeBlob transfers the serialized payload out of the response.
func (t *Trip) TakeBlob() (*Blob, error) { return t.payload.take() }

// Close releases the payload if it was not transferred.
func (t *Trip) Close() { t.payload.close() }

func (t *Trip) trip(index int) (*routeDoc, error) {
	if index < 0 || index >= len(t.body.Trips) {
		return nil, errors.IndexOutOfRange("Trip", index, len(t.body.Trips))
	}
	return &t.body.Trips[index], nil
}

// Distance returns the length of the primary trip, in meters.
func (t *Trip) Distance() (float64, error) {
	tr, err := t.trip(0)
	if err != nil {
		return 0, err
	}
	return tr.Distance, nil
}

// Duration returns the travel time of the primary trip, in seconds.
func (t *Trip) Duration() (float64, error) {
	tr, err := t.trip(0)
	if err != nil {
		return 0, err
	}
	return tr.Duration, nil
}

// Geometry returns the geometry of the primary trip.
func (t *Trip) Geometry() (string, error) {
	tr, err := t.trip(0)
	if err != nil {
		return "", err
	}
	return geometryString(tr.Geometry), nil
}

// WaypointCount returns the number of input coordinates.
func (t *Trip) WaypointCount() int { return len(t.body.Waypoints) }

func (t *Trip) waypoint(index int) (*tripWaypointDoc, error) {
	if index < 0 || index >= len(t.body.Waypoints) {
		return nil, errors.IndexOutOfRange("Waypoint", index, len(t.body.Waypoints))
	}
	return &t.body.Waypoints[index], nil
}

// WaypointLocation returns the snapped position of the input coordinate
// at index.
func (t *Trip) WaypointLocation(index int) (Location, error) {
	w, err := t.waypoint(index)
	if err != nil {
		return Location{}, err
	}
	return w.Location, nil
}

// WaypointName returns the street name the input coordinate snapped to.
func (t *Trip) WaypointName(index int) (string, error) {
	w, err := t.waypoint(index)
	if err != nil {
		return "", err
	}
	return w.Name, nil
}

// WaypointTripIndex returns the position of the input coordinate at
// index within the optimized visiting order.
func (t *Trip) WaypointTripIndex(index int) (int, error) {
	w, err := t.waypoint(index)
	if err != nil {
		return 0, err
	}
	return w.WaypointIndex, nil
}
