package response

import (
	"encoding/json"

	"github.com/osrmkit/osrmkit/errors"
)

type nearestBody struct {
	Waypoints []waypointDoc `json:"waypoints"`
}

// Nearest is a decoded Nearest service result.
type Nearest struct {
	payload payload
	body    nearestBody
}

// NewNearest decodes a serialized Nearest payload.
func NewNearest(data []byte) (*Nearest, error) {
	n := &Nearest{payload: payload{data: data}}
	if err := json.Unmarshal(data, &n.body); err != nil {
		return nil, errors.Internal(err, "decode nearest payload")
	}
	return n, nil
}

// TakeBlob transfers the serialized payload out of the response.
func (n *Nearest) TakeBlob() (*Blob, error) { return n.payload.take() }

// Close releases the payload if it was not transferred.
func (n *Nearest) Close() { n.payload.close() }

// Count returns the number of snapped candidates.
func (n *Nearest) Count() int { return len(n.body.Waypoints) }

func (n *Nearest) waypoint(index int) (*waypointDoc, error) {
	if index < 0 || index >= len(n.body.Waypoints) {
		return nil, errors.IndexOutOfRange("Waypoint", index, len(n.body.Waypoints))
	}
	return &n.body.Waypoints[index], nil
}

// Location returns the snapped position of the candidate at index.
func (n *Nearest) Location(index int) (Location, error) {
	w, err := n.waypoint(index)
	if err != nil {
		return Location{}, err
	}
	return w.Location, nil
}

// Name returns the street name of the candidate at index.
func (n *Nearest) Name(index int) (string, error) {
	w, err := n.waypoint(index)
	if err != nil {
		return "", err
	}
	return w.Name, nil
}

// Distance returns how far the candidate lies from the input
// coordinate, in meters.
func (n *Nearest) Distance(index int) (float64, error) {
	w, err := n.waypoint(index)
	if err != nil {
		return 0, err
	}
	return w.Distance, nil
}

// Hint returns the opaque snapping hint of the candidate, empty when
// hint generation was off.
func (n *Nearest) Hint(index int) (string, error) {
	w, err := n.waypoint(index)
	if err != nil {
		return "", err
	}
	return w.Hint, nil
}
