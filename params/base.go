package params

import (
	"math"

	"github.com/osrmkit/osrmkit/errors"
)

// Bearing restricts snapping to edges pointing in a direction.
// Value is degrees clockwise from true north, Range the allowed
// deviation to either side.
type Bearing struct {
	Value int
	Range int
}

// Coordinate is one entry of the ordered input sequence. Optional fields
// are nil (or empty) when unset.
type Coordinate struct {
	Lon      float64
	Lat      float64
	Radius   *float64
	Bearing  *Bearing
	Approach Approach
	Hint     string
}

// Base carries the capability set shared by every coordinate-taking
// service: the coordinate sequence and request-wide snapping options.
type Base struct {
	coords        []Coordinate
	excludes      []string
	generateHints bool
	skipWaypoints bool
	snapping      Snapping
}

func newBase() Base {
	return Base{
		generateHints: true,
		snapping:      SnappingDefault,
	}
}

func validLonLat(lon, lat float64) bool {
	if math.IsNaN(lon) || math.IsNaN(lat) {
		return false
	}
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

func validBearing(value, rng int) bool {
	return value >= 0 && value < 360 && rng >= 0 && rng <= 180
}

// AddCoordinate appends a longitude/latitude pair to the sequence.
func (b *Base) AddCoordinate(lon, lat float64) error {
	if !validLonLat(lon, lat) {
		return errors.InvalidCoordinate(lon, lat)
	}
	b.coords = append(b.coords, Coordinate{Lon: lon, Lat: lat})
	return nil
}

// AddCoordinateWith appends a coordinate with snapping radius and
// bearing in one call. The radius is in meters; bearingRange must lie in
// [0, 180].
func (b *Base) AddCoordinateWith(lon, lat, radius float64, bearing, bearingRange int) error {
	if !validLonLat(lon, lat) {
		return errors.InvalidCoordinate(lon, lat)
	}
	if radius < 0 {
		return errors.InvalidArgumentf("radius must be non-negative, got %v", radius)
	}
	if !validBearing(bearing, bearingRange) {
		return errors.InvalidArgumentf("bearing %d/%d outside [0,360)/[0,180]", bearing, bearingRange)
	}
	b.coords = append(b.coords, Coordinate{
		Lon:     lon,
		Lat:     lat,
		Radius:  &radius,
		Bearing: &Bearing{Value: bearing, Range: bearingRange},
	})
	return nil
}

func (b *Base) checkIndex(what string, index int) error {
	if index < 0 || index >= len(b.coords) {
		return errors.IndexOutOfRange(what, index, len(b.coords))
	}
	return nil
}

// SetHint attaches an opaque snapping hint to a previously added
// coordinate. The empty string clears it.
func (b *Base) SetHint(index int, hint string) error {
	if err := b.checkIndex("Hint", index); err != nil {
		return err
	}
	b.coords[index].Hint = hint
	return nil
}

// SetRadius sets the snapping radius, in meters, of a previously added
// coordinate. A negative radius clears it back to the engine default.
func (b *Base) SetRadius(index int, radius float64) error {
	if err := b.checkIndex("Radius", index); err != nil {
		return err
	}
	if radius < 0 {
		b.coords[index].Radius = nil
		return nil
	}
	b.coords[index].Radius = &radius
	return nil
}

// SetBearing sets the bearing filter of a previously added coordinate.
// A negative value or range clears it.
func (b *Base) SetBearing(index, value, rng int) error {
	if err := b.checkIndex("Bearing", index); err != nil {
		return err
	}
	if value < 0 || rng < 0 {
		b.coords[index].Bearing = nil
		return nil
	}
	if !validBearing(value, rng) {
		return errors.InvalidArgumentf("bearing %d/%d outside [0,360)/[0,180]", value, rng)
	}
	b.coords[index].Bearing = &Bearing{Value: value, Range: rng}
	return nil
}

// SetApproach sets the arrival-side restriction of a previously added
// coordinate.
func (b *Base) SetApproach(index int, approach Approach) error {
	if err := b.checkIndex("Approach", index); err != nil {
		return err
	}
	switch approach {
	case ApproachCurb, ApproachUnrestricted, ApproachOpposite:
		b.coords[index].Approach = approach
		return nil
	default:
		return errors.InvalidArgumentf("unknown approach %q", string(approach))
	}
}

// AddExclude excludes a routing profile class (e.g. "toll", "ferry").
func (b *Base) AddExclude(profile string) error {
	if profile == "" {
		return errors.InvalidArgument("exclude profile must not be empty")
	}
	b.excludes = append(b.excludes, profile)
	return nil
}

// SetGenerateHints controls whether the response carries snapping hints.
// Hints are generated by default.
func (b *Base) SetGenerateHints(on bool) { b.generateHints = on }

// SetSkipWaypoints omits the waypoint array from the response.
func (b *Base) SetSkipWaypoints(on bool) { b.skipWaypoints = on }

// SetSnapping controls which edges coordinates may snap to.
func (b *Base) SetSnapping(s Snapping) error {
	switch s {
	case SnappingDefault, SnappingAny:
		b.snapping = s
		return nil
	default:
		return errors.InvalidArgumentf("unknown snapping %q", string(s))
	}
}

// Coordinates returns the coordinate sequence. The slice is shared with
// the builder; callers must not mutate it.
func (b *Base) Coordinates() []Coordinate { return b.coords }

// Excludes returns the excluded profile classes.
func (b *Base) Excludes() []string { return b.excludes }

// GenerateHints reports whether snapping hints were requested.
func (b *Base) GenerateHints() bool { return b.generateHints }

// SkipWaypoints reports whether the waypoint array is omitted.
func (b *Base) SkipWaypoints() bool { return b.skipWaypoints }

// Snapping returns the snapping mode.
func (b *Base) Snapping() Snapping { return b.snapping }
