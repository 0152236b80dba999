package response

import (
	"encoding/json"

	"github.com/osrmkit/osrmkit/errors"
)

type matchingDoc struct {
	Distance   float64         `json:"distance"`
	Duration   float64         `json:"duration"`
	Confidence float64         `json:"confidence"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
	Legs       []legDoc        `json:"legs"`
}

type tracepointDoc struct {
	Location       Location `json:"location"`
	Name           string   `json:"name"`
	Hint           string   `json:"hint,omitempty"`
	MatchingsIndex int      `json:"matchings_index"`
	WaypointIndex  int      `json:"waypoint_index"`
}

type matchBody struct {
	Matchings   []matchingDoc    `json:"matchings"`
	Tracepoints []*tracepointDoc `json:"tracepoints"`
}

// Match is a decoded Match service result.
type Match struct {
	payload payload
	body    matchBody
}

// NewMatch decodes a serialized Match payload.
func NewMatch(data []byte) (*Match, error) {
	m := &Match{payload: payload{data: data}}
	if err := json.Unmarshal(data, &m.body); err != nil {
		return nil, errors.Internal(err, "decode match payload")
	}
	return m, nil
}

// TakeBlob transfers the serialized payload out of the response.
func (m *Match) TakeBlob() (*Blob, error) { return m.payload.take() }

// Close releases the payload if it was not transferred.
func (m *Match) Close() { m.payload.close() }

// MatchingCount returns the number of matched sub-traces.
func (m *Match) MatchingCount() int { return len(m.body.Matchings) }

// TracepointCount returns the number of input trace points, matched or
// not.
func (m *Match) TracepointCount() int { return len(m.body.Tracepoints) }

func (m *Match) matching(index int) (*matchingDoc, error) {
	if index < 0 || index >= len(m.body.Matchings) {
		return nil, errors.IndexOutOfRange("Matching", index, len(m.body.Matchings))
	}
	return &m.body.Matchings[index], nil
}

// MatchingDistance returns the length of the matched sub-trace at
// index, in meters.
func (m *Match) MatchingDistance(index int) (float64, error) {
	d, err := m.matching(index)
	if err != nil {
		return 0, err
	}
	return d.Distance, nil
}

// MatchingDuration returns the travel time of the matched sub-trace at
// index, in seconds.
func (m *Match) MatchingDuration(index int) (float64, error) {
	d, err := m.matching(index)
	if err != nil {
		return 0, err
	}
	return d.Duration, nil
}

// MatchingConfidence returns the confidence of the matched sub-trace at
// index, in [0, 1].
func (m *Match) MatchingConfidence(index int) (float64, error) {
	d, err := m.matching(index)
	if err != nil {
		return 0, err
	}
	return d.Confidence, nil
}

// MatchingGeometry returns the geometry of the matched sub-trace at
// index.
func (m *Match) MatchingGeometry(index int) (string, error) {
	d, err := m.matching(index)
	if err != nil {
		return "", err
	}
	return geometryString(d.Geometry), nil
}

func (m *Match) tracepoint(index int) (*tracepointDoc, error) {
	if index < 0 || index >= len(m.body.Tracepoints) {
		return nil, errors.IndexOutOfRange("Tracepoint", index, len(m.body.Tracepoints))
	}
	return m.body.Tracepoints[index], nil
}

// TracepointIsNull reports whether the trace point at index could not
// be matched.
func (m *Match) TracepointIsNull(index int) (bool, error) {
	tp, err := m.tracepoint(index)
	if err != nil {
		return false, err
	}
	return tp == nil, nil
}

// TracepointLocation returns the matched position of the trace point at
// index. Unmatched trace points fail with NoSegment.
func (m *Match) TracepointLocation(index int) (Location, error) {
	tp, err := m.tracepoint(index)
	if err != nil {
		return Location{}, err
	}
	if tp == nil {
		return Location{}, errors.Newf(errors.CodeNoSegment, "trace point %d did not match", index)
	}
	return tp.Location, nil
}

// TracepointMatchingIndex returns which matching the trace point at
// index belongs to. Unmatched trace points fail with NoSegment.
func (m *Match) TracepointMatchingIndex(index int) (int, error) {
	tp, err := m.tracepoint(index)
	if err != nil {
		return 0, err
	}
	if tp == nil {
		return 0, errors.Newf(errors.CodeNoSegment, "trace point %d did not match", index)
	}
	return tp.MatchingsIndex, nil
}
