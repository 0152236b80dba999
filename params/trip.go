package params

import "github.com/osrmkit/osrmkit/errors"

// Trip describes one Trip service request: a heuristically optimized
// visiting order over the coordinates.
type Trip struct {
	Base
	routeLike
	roundtrip   bool
	source      TripSource
	destination TripDestination
}

// NewTrip creates a Trip request builder. Trips are round trips with
// free start and end by default.
func NewTrip() *Trip {
	return &Trip{
		Base:        newBase(),
		routeLike:   newRouteLike(),
		roundtrip:   true,
		source:      TripSourceAny,
		destination: TripDestinationAny,
	}
}

// SetRoundtrip controls whether the trip returns to its start.
func (t *Trip) SetRoundtrip(on bool) { t.roundtrip = on }

// SetSource fixes the trip start.
func (t *Trip) SetSource(s TripSource) error {
	switch s {
	case TripSourceAny, TripSourceFirst:
		t.source = s
		return nil
	default:
		return errors.InvalidArgumentf("trip source must be %q or %q, got %q", TripSourceAny, TripSourceFirst, string(s))
	}
}

// SetDestination fixes the trip end.
func (t *Trip) SetDestination(d TripDestination) error {
	switch d {
	case TripDestinationAny, TripDestinationLast:
		t.destination = d
		return nil
	default:
		return errors.InvalidArgumentf("trip destination must be %q or %q, got %q", TripDestinationAny, TripDestinationLast, string(d))
	}
}

// Roundtrip reports whether the trip returns to its start.
func (t *Trip) Roundtrip() bool { return t.roundtrip }

// Source returns the trip start constraint.
func (t *Trip) Source() TripSource { return t.source }

// Destination returns the trip end constraint.
func (t *Trip) Destination() TripDestination { return t.destination }
