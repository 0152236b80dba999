package params

import "github.com/osrmkit/osrmkit/errors"

// routeLike carries the output options shared by Route, Match and Trip.
type routeLike struct {
	steps                bool
	alternatives         bool
	numberOfAlternatives int
	geometries           Geometries
	overview             Overview
	continueStraight     *bool
	annotations          Annotations
	waypoints            []int
}

func newRouteLike() routeLike {
	return routeLike{
		geometries: GeometriesPolyline,
		overview:   OverviewSimplified,
	}
}

// SetSteps requests turn-by-turn steps per leg.
func (r *routeLike) SetSteps(on bool) { r.steps = on }

// SetAlternatives requests alternative routes.
func (r *routeLike) SetAlternatives(on bool) { r.alternatives = on }

// SetNumberOfAlternatives requests up to count alternative routes.
// Zero turns alternatives off.
func (r *routeLike) SetNumberOfAlternatives(count int) error {
	if count < 0 {
		return errors.InvalidArgumentf("number of alternatives must be non-negative, got %d", count)
	}
	r.numberOfAlternatives = count
	r.alternatives = count > 0
	return nil
}

// SetGeometries selects the geometry encoding.
func (r *routeLike) SetGeometries(g Geometries) error {
	switch g {
	case GeometriesPolyline, GeometriesPolyline6, GeometriesGeoJSON:
		r.geometries = g
		return nil
	default:
		return errors.InvalidArgumentf("unknown geometries %q", string(g))
	}
}

// SetOverview selects how much geometry the response carries.
func (r *routeLike) SetOverview(o Overview) error {
	switch o {
	case OverviewSimplified, OverviewFull, OverviewFalse:
		r.overview = o
		return nil
	default:
		return errors.InvalidArgumentf("unknown overview %q", string(o))
	}
}

// SetContinueStraight forces or forbids u-turns at via points. Passing
// nil restores the profile default.
func (r *routeLike) SetContinueStraight(on *bool) {
	if on == nil {
		r.continueStraight = nil
		return
	}
	v := *on
	r.continueStraight = &v
}

// SetAnnotations selects the per-segment metric bit set.
func (r *routeLike) SetAnnotations(a Annotations) error {
	if a&^AnnotationsAll != 0 {
		return errors.InvalidArgumentf("unknown annotation bits %#x", uint32(a&^AnnotationsAll))
	}
	r.annotations = a
	return nil
}

// AddWaypoint marks the coordinate at index as a waypoint of the
// subsequence. Bounds against the coordinate sequence are checked at
// query time, since coordinates may still be added.
func (r *routeLike) AddWaypoint(index int) error {
	if index < 0 {
		return errors.InvalidArgumentf("waypoint index must be non-negative, got %d", index)
	}
	r.waypoints = append(r.waypoints, index)
	return nil
}

// ClearWaypoints removes the waypoint subsequence.
func (r *routeLike) ClearWaypoints() { r.waypoints = nil }

// Steps reports whether turn-by-turn steps were requested.
func (r *routeLike) Steps() bool { return r.steps }

// Alternatives reports whether alternative routes were requested.
func (r *routeLike) Alternatives() bool { return r.alternatives }

// NumberOfAlternatives returns the requested alternative count.
func (r *routeLike) NumberOfAlternatives() int { return r.numberOfAlternatives }

// Geometries returns the geometry encoding.
func (r *routeLike) Geometries() Geometries { return r.geometries }

// Overview returns the geometry overview mode.
func (r *routeLike) Overview() Overview { return r.overview }

// ContinueStraight returns the u-turn preference, nil when unset.
func (r *routeLike) ContinueStraight() *bool { return r.continueStraight }

// Annotations returns the per-segment metric bit set.
func (r *routeLike) Annotations() Annotations { return r.annotations }

// Waypoints returns the waypoint subsequence indices.
func (r *routeLike) Waypoints() []int { return r.waypoints }
