package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osrmkit/osrmkit/errors"
)

const routePayload = `{
	"routes": [
		{
			"distance": 1886.8,
			"duration": 251.5,
			"geometry": "yzfpAyacu@...",
			"legs": [
				{
					"distance": 1886.8,
					"duration": 251.5,
					"steps": [
						{"distance": 120.2, "duration": 18.1, "name": "Alexanderplatz",
						 "maneuver": {"type": "depart", "instruction": "Head east on Alexanderplatz", "location": [13.41, 52.52]}},
						{"distance": 0, "duration": 0, "name": "Karl-Marx-Allee",
						 "maneuver": {"type": "arrive", "instruction": "You have arrived", "location": [13.43, 52.51]}}
					]
				}
			]
		},
		{"distance": 2011.3, "duration": 280.0, "legs": [{"distance": 2011.3, "duration": 280.0, "steps": []}]}
	],
	"waypoints": [
		{"name": "Alexanderplatz", "location": [13.41, 52.52], "distance": 4.2, "hint": "abc"},
		{"name": "Karl-Marx-Allee", "location": [13.43, 52.51], "distance": 2.8, "hint": "def"}
	]
}`

func TestRouteAccessors(t *testing.T) {
	r, err := NewRoute([]byte(routePayload))
	require.NoError(t, err)

	d, err := r.Distance()
	require.NoError(t, err)
	assert.Equal(t, 1886.8, d)

	du, err := r.Duration()
	require.NoError(t, err)
	assert.Equal(t, 251.5, du)

	assert.Equal(t, 2, r.AlternativeCount())

	d, err = r.DistanceAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2011.3, d)

	g, err := r.GeometryAt(0)
	require.NoError(t, err)
	assert.Equal(t, "yzfpAyacu@...", g)

	legs, err := r.LegCount(0)
	require.NoError(t, err)
	assert.Equal(t, 1, legs)

	steps, err := r.StepCount(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, steps)

	ins, err := r.StepInstruction(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Head east on Alexanderplatz", ins)

	assert.Equal(t, 2, r.WaypointCount())
	loc, err := r.WaypointLocation(0)
	require.NoError(t, err)
	assert.Equal(t, 13.41, loc.Lon())
	assert.Equal(t, 52.52, loc.Lat())

	name, err := r.WaypointName(1)
	require.NoError(t, err)
	assert.Equal(t, "Karl-Marx-Allee", name)
}

func TestRouteIndexBounds(t *testing.T) {
	r, err := NewRoute([]byte(routePayload))
	require.NoError(t, err)

	// One past the last valid index fails, the last valid one works.
	_, err = r.DistanceAt(1)
	require.NoError(t, err)
	_, err = r.DistanceAt(2)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))

	_, err = r.StepDistance(0, 0, 2)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
	_, err = r.StepDistance(0, 1, 0)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
	_, err = r.WaypointName(-1)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
}

func TestBlobTransferProtocol(t *testing.T) {
	r, err := NewRoute([]byte(routePayload))
	require.NoError(t, err)

	blob, err := r.TakeBlob()
	require.NoError(t, err)

	data, err := blob.Data()
	require.NoError(t, err)
	assert.Equal(t, routePayload, string(data))

	size, err := blob.Size()
	require.NoError(t, err)
	assert.Equal(t, len(routePayload), size)

	// Second transfer fails; accessors on the decoded view keep working.
	_, err = r.TakeBlob()
	assert.Equal(t, errors.CodeAlreadyTransferred, errors.CodeOf(err))
	_, err = r.Distance()
	assert.NoError(t, err)

	// Close after transfer must not touch the transferred bytes.
	r.Close()
	data, err = blob.Data()
	require.NoError(t, err)
	assert.Equal(t, routePayload, string(data))

	blob.Release()
	_, err = blob.Data()
	assert.Equal(t, errors.CodeAlreadyClosed, errors.CodeOf(err))
	_, err = blob.Size()
	assert.Equal(t, errors.CodeAlreadyClosed, errors.CodeOf(err))

	// Double release is a no-op.
	blob.Release()
}

func TestTakeBlobAfterClose(t *testing.T) {
	r, err := NewRoute([]byte(routePayload))
	require.NoError(t, err)

	r.Close()
	_, err = r.TakeBlob()
	assert.Equal(t, errors.CodeAlreadyTransferred, errors.CodeOf(err))
}

const tablePayload = `{
	"durations": [[0, 120.5, null], [130.1, 0, null], [null, null, 0]],
	"distances": [[0, 1500.0, null], [1600.2, 0, null], [null, null, 0]],
	"sources": [
		{"name": "A", "location": [13.41, 52.52], "distance": 1},
		{"name": "B", "location": [13.42, 52.53], "distance": 2},
		{"name": "C", "location": [13.43, 52.54], "distance": 3}
	],
	"destinations": [
		{"name": "A", "location": [13.41, 52.52], "distance": 1},
		{"name": "B", "location": [13.42, 52.53], "distance": 2},
		{"name": "C", "location": [13.43, 52.54], "distance": 3}
	]
}`

func TestTableUnreachableIsInfNotError(t *testing.T) {
	tb, err := NewTable([]byte(tablePayload))
	require.NoError(t, err)

	assert.Equal(t, 3, tb.SourceCount())
	assert.Equal(t, 3, tb.DestinationCount())

	d, err := tb.Duration(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 120.5, d)

	// Unreachable cell: +Inf, no error.
	d, err = tb.Duration(0, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	dist, err := tb.Distance(2, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))

	reachable, err := tb.Reachable(0, 1)
	require.NoError(t, err)
	assert.True(t, reachable)
	reachable, err = tb.Reachable(0, 2)
	require.NoError(t, err)
	assert.False(t, reachable)

	_, err = tb.Duration(3, 0)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
	_, err = tb.Duration(0, 3)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
}

func TestTableMissingMatrixIsNoTable(t *testing.T) {
	tb, err := NewTable([]byte(`{"durations": [[0]]}`))
	require.NoError(t, err)

	_, err = tb.Distance(0, 0)
	assert.Equal(t, errors.CodeNoTable, errors.CodeOf(err))
	_, err = tb.DistanceMatrix()
	assert.Equal(t, errors.CodeNoTable, errors.CodeOf(err))

	m, err := tb.DurationMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, m)
}

const nearestPayload = `{
	"waypoints": [
		{"name": "Friedrichstraße", "location": [13.388, 52.517], "distance": 4.08, "hint": "opaque1"},
		{"name": "Dorotheenstraße", "location": [13.389, 52.518], "distance": 10.1, "hint": "opaque2"}
	]
}`

func TestNearestAccessors(t *testing.T) {
	n, err := NewNearest([]byte(nearestPayload))
	require.NoError(t, err)

	assert.Equal(t, 2, n.Count())

	name, err := n.Name(0)
	require.NoError(t, err)
	assert.Equal(t, "Friedrichstraße", name)

	d, err := n.Distance(1)
	require.NoError(t, err)
	assert.Equal(t, 10.1, d)

	h, err := n.Hint(0)
	require.NoError(t, err)
	assert.Equal(t, "opaque1", h)

	_, err = n.Location(2)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
}

const matchPayload = `{
	"matchings": [
		{"distance": 500.0, "duration": 60.0, "confidence": 0.93, "geometry": "abcd", "legs": []}
	],
	"tracepoints": [
		{"location": [13.41, 52.52], "name": "X", "matchings_index": 0, "waypoint_index": 0},
		null,
		{"location": [13.42, 52.53], "name": "Y", "matchings_index": 0, "waypoint_index": 1}
	]
}`

func TestMatchNullTracepoints(t *testing.T) {
	m, err := NewMatch([]byte(matchPayload))
	require.NoError(t, err)

	assert.Equal(t, 1, m.MatchingCount())
	assert.Equal(t, 3, m.TracepointCount())

	c, err := m.MatchingConfidence(0)
	require.NoError(t, err)
	assert.Equal(t, 0.93, c)

	isNull, err := m.TracepointIsNull(1)
	require.NoError(t, err)
	assert.True(t, isNull)
	isNull, err = m.TracepointIsNull(0)
	require.NoError(t, err)
	assert.False(t, isNull)

	loc, err := m.TracepointLocation(0)
	require.NoError(t, err)
	assert.Equal(t, 13.41, loc.Lon())

	_, err = m.TracepointLocation(1)
	assert.Equal(t, errors.CodeNoSegment, errors.CodeOf(err))
	_, err = m.TracepointMatchingIndex(1)
	assert.Equal(t, errors.CodeNoSegment, errors.CodeOf(err))

	_, err = m.TracepointIsNull(3)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
	_, err = m.MatchingDistance(1)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
}

const tripPayload = `{
	"trips": [
		{"distance": 3200.0, "duration": 410.0, "geometry": "wxyz", "legs": []}
	],
	"waypoints": [
		{"name": "A", "location": [13.41, 52.52], "distance": 1, "trips_index": 0, "waypoint_index": 0},
		{"name": "B", "location": [13.45, 52.50], "distance": 2, "trips_index": 0, "waypoint_index": 2},
		{"name": "C", "location": [13.43, 52.54], "distance": 3, "trips_index": 0, "waypoint_index": 1}
	]
}`

func TestTripAccessors(t *testing.T) {
	tr, err := NewTrip([]byte(tripPayload))
	require.NoError(t, err)

	d, err := tr.Distance()
	require.NoError(t, err)
	assert.Equal(t, 3200.0, d)

	assert.Equal(t, 3, tr.WaypointCount())

	// The optimized order permutes the inputs: B is visited last.
	idx, err := tr.WaypointTripIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	name, err := tr.WaypointName(2)
	require.NoError(t, err)
	assert.Equal(t, "C", name)

	_, err = tr.WaypointTripIndex(3)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
}

func TestTileOwnership(t *testing.T) {
	raw := []byte{0x4f, 0x54, 0x4c, 0x31, 0x00, 0x01}
	tl := NewTile(raw)

	data, err := tl.Data()
	require.NoError(t, err)
	assert.Equal(t, raw, data)

	size, err := tl.Size()
	require.NoError(t, err)
	assert.Equal(t, len(raw), size)

	blob, err := tl.TakeBlob()
	require.NoError(t, err)

	// After transfer the response no longer serves the bytes.
	_, err = tl.Data()
	assert.Equal(t, errors.CodeAlreadyTransferred, errors.CodeOf(err))
	_, err = tl.Size()
	assert.Equal(t, errors.CodeAlreadyTransferred, errors.CodeOf(err))

	data, err = blob.Data()
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	blob.Release()
}

func TestGeoJSONGeometryPassesThroughRaw(t *testing.T) {
	r, err := NewRoute([]byte(`{"routes":[{"distance":1,"duration":1,"geometry":{"type":"LineString","coordinates":[[13.41,52.52],[13.43,52.51]]},"legs":[]}]}`))
	require.NoError(t, err)

	g, err := r.GeometryAt(0)
	require.NoError(t, err)
	assert.Contains(t, g, `"LineString"`)
}
