package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osrmkit/osrmkit/errors"
)

func TestAddCoordinateValidation(t *testing.T) {
	r := NewRoute()

	require.NoError(t, r.AddCoordinate(13.388860, 52.517037))
	require.NoError(t, r.AddCoordinate(-180, -90))
	require.NoError(t, r.AddCoordinate(180, 90))

	for _, tc := range []struct{ lon, lat float64 }{
		{181, 0},
		{-181, 0},
		{0, 91},
		{0, -91},
		{math.NaN(), 0},
		{0, math.NaN()},
	} {
		err := r.AddCoordinate(tc.lon, tc.lat)
		assert.Equal(t, errors.CodeInvalidCoordinate, errors.CodeOf(err), "lon=%v lat=%v", tc.lon, tc.lat)
	}
	assert.Len(t, r.Coordinates(), 3)
}

func TestAddCoordinateWith(t *testing.T) {
	r := NewRoute()

	require.NoError(t, r.AddCoordinateWith(13.4, 52.5, 25.0, 90, 30))
	c := r.Coordinates()[0]
	require.NotNil(t, c.Radius)
	assert.Equal(t, 25.0, *c.Radius)
	require.NotNil(t, c.Bearing)
	assert.Equal(t, 90, c.Bearing.Value)
	assert.Equal(t, 30, c.Bearing.Range)

	err := r.AddCoordinateWith(13.4, 52.5, -1, 90, 30)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	err = r.AddCoordinateWith(13.4, 52.5, 25.0, 360, 30)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	err = r.AddCoordinateWith(13.4, 52.5, 25.0, 90, 181)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestPerCoordinateIndexBounds(t *testing.T) {
	r := NewRoute()
	require.NoError(t, r.AddCoordinate(13.4, 52.5))
	require.NoError(t, r.AddCoordinate(13.5, 52.6))

	n := len(r.Coordinates())

	// The last valid index works, one past it does not.
	require.NoError(t, r.SetRadius(n-1, 10))
	err := r.SetRadius(n, 10)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))

	require.NoError(t, r.SetHint(n-1, "opaque"))
	err = r.SetHint(n, "opaque")
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))

	require.NoError(t, r.SetBearing(n-1, 45, 15))
	err = r.SetBearing(n, 45, 15)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))

	require.NoError(t, r.SetApproach(n-1, ApproachCurb))
	err = r.SetApproach(-1, ApproachCurb)
	assert.Equal(t, errors.CodeIndexOutOfRange, errors.CodeOf(err))
}

func TestNegativeClearsRadiusAndBearing(t *testing.T) {
	r := NewRoute()
	require.NoError(t, r.AddCoordinateWith(13.4, 52.5, 25.0, 90, 30))

	require.NoError(t, r.SetRadius(0, -1))
	assert.Nil(t, r.Coordinates()[0].Radius)

	require.NoError(t, r.SetBearing(0, -1, 30))
	assert.Nil(t, r.Coordinates()[0].Bearing)

	// Non-negative but out of range is an error, not a clear.
	err := r.SetBearing(0, 400, 30)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestBaseOptions(t *testing.T) {
	r := NewRoute()

	assert.True(t, r.GenerateHints())
	assert.False(t, r.SkipWaypoints())
	assert.Equal(t, SnappingDefault, r.Snapping())

	r.SetGenerateHints(false)
	r.SetSkipWaypoints(true)
	require.NoError(t, r.SetSnapping(SnappingAny))
	assert.False(t, r.GenerateHints())
	assert.True(t, r.SkipWaypoints())
	assert.Equal(t, SnappingAny, r.Snapping())

	err := r.SetSnapping(Snapping("magnetic"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	require.NoError(t, r.AddExclude("toll"))
	require.NoError(t, r.AddExclude("ferry"))
	assert.Equal(t, []string{"toll", "ferry"}, r.Excludes())

	err = r.AddExclude("")
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}
