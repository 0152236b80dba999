package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osrmkit/osrmkit/errors"
)

func TestRouteDefaults(t *testing.T) {
	r := NewRoute()

	assert.False(t, r.Steps())
	assert.False(t, r.Alternatives())
	assert.Equal(t, 0, r.NumberOfAlternatives())
	assert.Equal(t, GeometriesPolyline, r.Geometries())
	assert.Equal(t, OverviewSimplified, r.Overview())
	assert.Nil(t, r.ContinueStraight())
	assert.Equal(t, AnnotationsNone, r.Annotations())
	assert.Empty(t, r.Waypoints())
}

func TestRouteOptions(t *testing.T) {
	r := NewRoute()

	require.NoError(t, r.SetNumberOfAlternatives(3))
	assert.True(t, r.Alternatives())
	assert.Equal(t, 3, r.NumberOfAlternatives())

	require.NoError(t, r.SetNumberOfAlternatives(0))
	assert.False(t, r.Alternatives())

	err := r.SetNumberOfAlternatives(-1)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	require.NoError(t, r.SetGeometries(GeometriesGeoJSON))
	err = r.SetGeometries(Geometries("wkt"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	require.NoError(t, r.SetOverview(OverviewFalse))
	err = r.SetOverview(Overview("none"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	on := true
	r.SetContinueStraight(&on)
	require.NotNil(t, r.ContinueStraight())
	assert.True(t, *r.ContinueStraight())
	r.SetContinueStraight(nil)
	assert.Nil(t, r.ContinueStraight())
}

func TestRouteAnnotationBits(t *testing.T) {
	r := NewRoute()

	require.NoError(t, r.SetAnnotations(AnnotationsDuration|AnnotationsDistance))
	assert.Equal(t, AnnotationsDuration|AnnotationsDistance, r.Annotations())

	require.NoError(t, r.SetAnnotations(AnnotationsAll))

	err := r.SetAnnotations(Annotations(64))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestRouteWaypoints(t *testing.T) {
	r := NewRoute()

	require.NoError(t, r.AddWaypoint(0))
	require.NoError(t, r.AddWaypoint(2))
	assert.Equal(t, []int{0, 2}, r.Waypoints())

	err := r.AddWaypoint(-1)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	r.ClearWaypoints()
	assert.Empty(t, r.Waypoints())
}

func TestMatchTimestampsPairWithCoordinates(t *testing.T) {
	m := NewMatch()
	require.NoError(t, m.AddCoordinate(13.4, 52.5))
	require.NoError(t, m.AddCoordinate(13.5, 52.6))

	require.NoError(t, m.AddTimestamp(1424684612))
	require.NoError(t, m.AddTimestamp(1424684616))

	err := m.AddTimestamp(1424684620)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
	assert.Len(t, m.Timestamps(), 2)
}

func TestMatchOptions(t *testing.T) {
	m := NewMatch()

	assert.Equal(t, GapsSplit, m.Gaps())
	assert.False(t, m.Tidy())

	require.NoError(t, m.SetGaps(GapsIgnore))
	assert.Equal(t, GapsIgnore, m.Gaps())
	err := m.SetGaps(Gaps("merge"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	m.SetTidy(true)
	assert.True(t, m.Tidy())
}

func TestTripDefaultsAndOptions(t *testing.T) {
	tr := NewTrip()

	assert.True(t, tr.Roundtrip())
	assert.Equal(t, TripSourceAny, tr.Source())
	assert.Equal(t, TripDestinationAny, tr.Destination())

	tr.SetRoundtrip(false)
	require.NoError(t, tr.SetSource(TripSourceFirst))
	require.NoError(t, tr.SetDestination(TripDestinationLast))
	assert.False(t, tr.Roundtrip())
	assert.Equal(t, TripSourceFirst, tr.Source())
	assert.Equal(t, TripDestinationLast, tr.Destination())

	err := tr.SetSource(TripSource("middle"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
	err = tr.SetDestination(TripDestination("middle"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestTableDefaults(t *testing.T) {
	tb := NewTable()

	assert.Equal(t, TableAnnotationsDuration, tb.Annotations())
	assert.True(t, tb.Annotations().HasDuration())
	assert.False(t, tb.Annotations().HasDistance())
	assert.Equal(t, FallbackCoordinateInput, tb.FallbackCoordinateType())
	assert.Equal(t, 0.0, tb.FallbackSpeed())
	assert.Equal(t, 1.0, tb.ScaleFactor())
	assert.Empty(t, tb.Sources())
	assert.Empty(t, tb.Destinations())
}

func TestTableAnnotationScheme(t *testing.T) {
	tb := NewTable()

	// The table vocabulary is its own scheme: All is 3, not the sum of
	// the individual bits.
	require.NoError(t, tb.SetAnnotations(TableAnnotationsAll))
	assert.True(t, tb.Annotations().HasDuration())
	assert.True(t, tb.Annotations().HasDistance())

	require.NoError(t, tb.SetAnnotations(TableAnnotationsDistance))
	assert.False(t, tb.Annotations().HasDuration())
	assert.True(t, tb.Annotations().HasDistance())

	require.NoError(t, tb.SetAnnotations(TableAnnotationsNone))
	assert.False(t, tb.Annotations().HasDuration())
	assert.False(t, tb.Annotations().HasDistance())

	err := tb.SetAnnotations(TableAnnotations(8))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestTableFallbackAndScale(t *testing.T) {
	tb := NewTable()

	require.NoError(t, tb.SetFallbackSpeed(30))
	err := tb.SetFallbackSpeed(0)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
	err = tb.SetFallbackSpeed(-5)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	require.NoError(t, tb.SetFallbackCoordinateType(FallbackCoordinateSnapped))
	err = tb.SetFallbackCoordinateType(FallbackCoordinate("midpoint"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	require.NoError(t, tb.SetScaleFactor(2))
	err = tb.SetScaleFactor(0)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestNearestNumberOfResults(t *testing.T) {
	n := NewNearest()

	assert.Equal(t, 1, n.NumberOfResults())

	require.NoError(t, n.SetNumberOfResults(5))
	assert.Equal(t, 5, n.NumberOfResults())

	err := n.SetNumberOfResults(0)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestTileAddressing(t *testing.T) {
	tl := NewTile()

	require.NoError(t, tl.SetX(17603))
	require.NoError(t, tl.SetY(10747))
	require.NoError(t, tl.SetZ(15))
	assert.Equal(t, 17603, tl.X())
	assert.Equal(t, 10747, tl.Y())
	assert.Equal(t, 15, tl.Z())

	for _, err := range []error{tl.SetX(-1), tl.SetY(-1), tl.SetZ(-1)} {
		assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
	}
}
